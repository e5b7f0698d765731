package mail_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailkit/core/mail"
)

func buildWithDir(t *testing.T, dir string) (*mail.Message, error) {
	t.Helper()
	return mail.Build(mail.BuildParams{
		To:             "user@example.com",
		Subject:        "Test",
		Body:           "Hello",
		AttachmentsDir: dir,
	})
}

func TestBuild_Attachments(t *testing.T) {
	t.Parallel()

	t.Run("reads every regular file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first"), 0644))

		msg, err := buildWithDir(t, dir)
		require.NoError(t, err)
		require.Len(t, msg.Attachments, 2)
		assert.Equal(t, "a.txt", msg.Attachments[0].Filename)
		assert.Equal(t, []byte("first"), msg.Attachments[0].Content)
		assert.Equal(t, "b.txt", msg.Attachments[1].Filename)
		assert.Equal(t, []byte("second"), msg.Attachments[1].Content)
	})

	t.Run("skips directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "inner.txt"), []byte("hidden"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "file.bin"), []byte{0x00, 0x01}, 0644))

		msg, err := buildWithDir(t, dir)
		require.NoError(t, err)
		require.Len(t, msg.Attachments, 1)
		assert.Equal(t, "file.bin", msg.Attachments[0].Filename)
	})

	t.Run("skips broken symlinks", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling")))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt"), []byte("ok"), 0644))

		msg, err := buildWithDir(t, dir)
		require.NoError(t, err)
		require.Len(t, msg.Attachments, 1)
		assert.Equal(t, "real.txt", msg.Attachments[0].Filename)
	})

	t.Run("missing directory means no attachments", func(t *testing.T) {
		t.Parallel()

		msg, err := buildWithDir(t, filepath.Join(t.TempDir(), "does-not-exist"))
		require.NoError(t, err)
		assert.Empty(t, msg.Attachments)
	})

	t.Run("empty directory path means no scan", func(t *testing.T) {
		t.Parallel()

		msg, err := buildWithDir(t, "")
		require.NoError(t, err)
		assert.Empty(t, msg.Attachments)
	})
}

func TestAttachmentError_NamesFile(t *testing.T) {
	t.Parallel()

	err := mail.AttachmentError{Filename: "report.pdf", Err: os.ErrPermission}
	assert.ErrorIs(t, err, mail.ErrAttachment)
	assert.Contains(t, err.Error(), "report.pdf")
}
