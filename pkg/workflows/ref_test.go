package workflows

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateRef(t *testing.T) {
	ref, err := ParseTemplateRef("user123/my-workflow")

	require.NoError(t, err)
	assert.Equal(t, "user123", ref.Owner)
	assert.Equal(t, "my-workflow", ref.Name)
	assert.Equal(t, "user123/my-workflow", ref.String())
}

func TestParseTemplateRef_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		reference string
	}{
		{"no slash", "just-a-name"},
		{"too many parts", "a/b/c"},
		{"empty owner", "/workflow"},
		{"empty name", "owner/"},
		{"empty string", ""},
		{"whitespace in owner", "some owner/workflow"},
		{"whitespace in name", "owner/some workflow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTemplateRef(tt.reference)

			require.Error(t, err)
			var refErr *InvalidReferenceError
			assert.ErrorAs(t, err, &refErr)
			assert.Equal(t, tt.reference, refErr.Reference)
		})
	}
}

func TestTemplateRef_RawURL(t *testing.T) {
	ref := TemplateRef{Owner: "myuser", Name: "my-workflow"}

	assert.Equal(t,
		"https://raw.githubusercontent.com/myuser/actions-workflows/refs/heads/main/my-workflow.yml",
		ref.RawURL())
}

func TestTemplateRef_RawURL_Deterministic(t *testing.T) {
	ref := TemplateRef{Owner: "user", Name: "test-workflow_v2"}

	first := ref.RawURL()
	assert.Equal(t, first, ref.RawURL())
	assert.Contains(t, first, "test-workflow_v2.yml")
}

func TestNormalizeFileName(t *testing.T) {
	assert.Equal(t, "test.yml", NormalizeFileName("test"))
	assert.Equal(t, "test.yml", NormalizeFileName("test.yml"))
	assert.Equal(t, "test.yaml", NormalizeFileName("test.yaml"))
}
