package grader

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	first, err := BuildPrompt("The cat sat on the mat.", "猫坐在垫子上。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BuildPrompt("The cat sat on the mat.", "猫坐在垫子上。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Error("identical inputs must yield byte-identical prompts")
	}
}

func TestBuildPrompt_Layout(t *testing.T) {
	prompt, err := BuildPrompt("The cat sat on the mat.", "猫坐在垫子上。")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(prompt, "你是一个专业的考研英语翻译题评分专家") {
		t.Error("prompt must open with the rubric")
	}
	for _, section := range []string{"【评分规则】", "【评分流程】", "【评分讲解】", "【评分示例】"} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing rubric section %s", section)
		}
	}
	if !strings.Contains(prompt, "\n\n原文：The cat sat on the mat.") {
		t.Error("prompt must carry the literal source sentence")
	}
	if !strings.HasSuffix(prompt, "\n用户答案：猫坐在垫子上。") {
		t.Error("prompt must end with the literal learner answer")
	}
}

func TestBuildPrompt_InvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		source string
		answer string
	}{
		{"empty source", "", "猫坐在垫子上。"},
		{"empty answer", "The cat sat on the mat.", ""},
		{"whitespace source", "   \t\n", "猫坐在垫子上。"},
		{"whitespace answer", "The cat sat on the mat.", "  \n  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := BuildPrompt(tc.source, tc.answer); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
