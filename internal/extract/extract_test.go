package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed_SupportedExtensions(t *testing.T) {
	assert.True(t, Allowed("resume.pdf"))
	assert.True(t, Allowed("resume.PDF"))
	assert.True(t, Allowed("resume.docx"))
	assert.True(t, Allowed("resume.txt"))
}

func TestAllowed_RejectsOtherExtensions(t *testing.T) {
	assert.False(t, Allowed("resume.exe"))
	assert.False(t, Allowed("resume.doc"))
	assert.False(t, Allowed("resume"))
	assert.False(t, Allowed(""))
}

func TestFromUpload_PlainText(t *testing.T) {
	text, err := FromUpload("resume.txt", []byte("  Python developer\n"))

	require.NoError(t, err)
	assert.Equal(t, "Python developer", text)
}

func TestFromUpload_UnsupportedType(t *testing.T) {
	_, err := FromUpload("resume.exe", []byte("data"))

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestFromUpload_CorruptPDF(t *testing.T) {
	_, err := FromUpload("resume.pdf", []byte("this is not a pdf"))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
}

func TestFromUpload_CorruptDocx(t *testing.T) {
	_, err := FromUpload("resume.docx", []byte("this is not a docx"))

	assert.Error(t, err)
}
