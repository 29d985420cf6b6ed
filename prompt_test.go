package docname_test

import (
	"testing"

	"github.com/fwojciec/docname"
	"github.com/stretchr/testify/assert"
)

func TestBuildNamePrompt(t *testing.T) {
	t.Parallel()

	prompt := docname.BuildNamePrompt("Q3 revenue planning")

	assert.Contains(t, prompt, "Q3 revenue planning")
	assert.Contains(t, prompt, "limit it to 3 words")
	assert.Contains(t, prompt, "without any file extensions")
}

func TestBuildCategoryPrompt(t *testing.T) {
	t.Parallel()

	prompt := docname.BuildCategoryPrompt("Q3 revenue planning", docname.NewCategories("Finance", "Personal"))

	assert.Contains(t, prompt, "Q3 revenue planning")
	assert.Contains(t, prompt, "[Finance, Personal]")
	assert.Contains(t, prompt, "Do not assign a category that is not in this list")
}

func TestCleanName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: `"Q3 Revenue Plan"`, want: "Q3 Revenue Plan"},
		{in: "  \"Q3 Revenue Plan\"\n", want: "Q3 Revenue Plan"},
		{in: "Q3 Revenue Plan", want: "Q3 Revenue Plan"},
		{in: `""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docname.CleanName(tt.in))
		})
	}
}

func TestCleanCategory(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Finance", docname.CleanCategory(" Finance\n"))
}

func TestAcceptName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "three words", in: "Q3 Revenue Plan", want: true},
		{name: "four words", in: "Q3 Revenue Plan Draft", want: true},
		{name: "five words", in: "Q3 Revenue Plan Draft Final", want: false},
		{name: "six words", in: "A Very Long Name For File", want: false},
		{name: "one word", in: "Budget", want: true},
		{name: "empty", in: "", want: false},
		{name: "whitespace only", in: "   ", want: false},
		{name: "path separator", in: "a/b", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docname.AcceptName(tt.in))
		})
	}
}
