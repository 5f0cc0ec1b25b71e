package services

import (
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStorageKey_NamespacedByUploader(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	key := BuildStorageKey("doc-123", "report.pdf", now)

	assert.Equal(t, fmt.Sprintf("doc-123/%d.pdf", now.UnixMilli()), key)
	assert.True(t, strings.HasPrefix(key, "doc-123/"))
}

func TestBuildStorageKey_KeepsLastExtension(t *testing.T) {
	now := time.Now()
	key := BuildStorageKey("d1", "scan.image.jpeg", now)
	assert.True(t, strings.HasSuffix(key, ".jpeg"))
}

func TestBuildStorageKey_NoExtension(t *testing.T) {
	now := time.Now()
	key := BuildStorageKey("d1", "README", now)
	assert.True(t, strings.HasSuffix(key, ".README"))
	assert.True(t, strings.HasPrefix(key, "d1/"))
}

func TestRecordFileReference_MissingOrEmptyFileYieldsNull(t *testing.T) {
	fileURL, fileType := recordFileReference("doc-1", nil, time.Now())
	assert.Nil(t, fileURL)
	assert.Nil(t, fileType)

	empty := &multipart.FileHeader{Filename: "empty.pdf", Size: 0}
	fileURL, fileType = recordFileReference("doc-1", empty, time.Now())
	assert.Nil(t, fileURL)
	assert.Nil(t, fileType)
}

func TestRecordFileReference_FileYieldsUploaderKey(t *testing.T) {
	header := textproto.MIMEHeader{}
	header.Set("Content-Type", "application/pdf")
	file := &multipart.FileHeader{Filename: "report.pdf", Size: 2048, Header: header}

	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	fileURL, fileType := recordFileReference("doc-1", file, now)

	require.NotNil(t, fileURL)
	assert.True(t, strings.HasPrefix(*fileURL, "doc-1/"))
	assert.True(t, strings.HasSuffix(*fileURL, ".pdf"))
	require.NotNil(t, fileType)
	assert.Equal(t, "application/pdf", *fileType)
}

func TestRecordFileReference_NoDeclaredType(t *testing.T) {
	file := &multipart.FileHeader{Filename: "scan.png", Size: 10, Header: textproto.MIMEHeader{}}
	fileURL, fileType := recordFileReference("doc-1", file, time.Now())
	assert.NotNil(t, fileURL)
	assert.Nil(t, fileType)
}
