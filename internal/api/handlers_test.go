package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/voice-notes/internal/blob"
	"github.com/nguyentantai21042004/voice-notes/internal/config"
	"github.com/nguyentantai21042004/voice-notes/internal/logger"
	"github.com/nguyentantai21042004/voice-notes/internal/metrics"
	"github.com/nguyentantai21042004/voice-notes/internal/notes"
	"github.com/nguyentantai21042004/voice-notes/internal/processor"
	"github.com/nguyentantai21042004/voice-notes/internal/render"
	"github.com/nguyentantai21042004/voice-notes/pkg/executor"
)

type mockProcessor struct {
	err      error
	gotName  string
	gotBytes []byte
}

func (m *mockProcessor) Convert(_ context.Context, upload processor.Upload) (*processor.Document, error) {
	m.gotName = upload.Filename
	m.gotBytes, _ = io.ReadAll(upload.Body)
	if m.err != nil {
		return nil, m.err
	}
	return &processor.Document{
		Filename:    "notes.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.3 mock"),
	}, nil
}

type fakeTransfer struct{ uploadErr error }

func (f *fakeTransfer) Upload(_ context.Context, bucket, _, remoteName string) (string, error) {
	if f.uploadErr != nil {
		return "", &blob.Error{Op: "upload", Bucket: bucket, Object: remoteName, Err: f.uploadErr}
	}
	return blob.URI(bucket, remoteName), nil
}

func (f *fakeTransfer) Delete(context.Context, string, string) error { return nil }

type fakeModel struct {
	text  string
	calls int
}

func (m *fakeModel) GenerateContent(context.Context, string, string, string) (string, error) {
	m.calls++
	return m.text, nil
}

func newTestServer(t *testing.T, proc processor.Processor, m *metrics.Metrics) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewHandler(proc, logger.Nop(), m, 1<<20)
	router := gin.New()
	handler.RegisterRoutes(router)
	return router
}

func postAudio(t *testing.T, router *gin.Engine, field, filename string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/process_audio", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

func TestProcessAudio(t *testing.T) {
	proc := &mockProcessor{}
	router := newTestServer(t, proc, nil)

	rec := postAudio(t, router, "audio_file", "lecture.mp3", []byte("ID3data"))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="notes.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 mock", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "lecture.mp3", proc.gotName)
	assert.Equal(t, []byte("ID3data"), proc.gotBytes)
}

func TestProcessAudioFailureHidesCause(t *testing.T) {
	proc := &mockProcessor{err: &notes.Error{Op: "generate", Err: errors.New("secret quota detail")}}
	router := newTestServer(t, proc, nil)

	rec := postAudio(t, router, "audio_file", "lecture.mp3", []byte("ID3data"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error processing audio", decodeDetail(t, rec))
	assert.False(t, strings.Contains(rec.Body.String(), "secret"))
}

func TestProcessAudioMissingFile(t *testing.T) {
	router := newTestServer(t, &mockProcessor{}, nil)

	rec := postAudio(t, router, "wrong_field", "lecture.mp3", []byte("ID3data"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "audio_file is required", decodeDetail(t, rec))
}

func TestProcessAudioTooLarge(t *testing.T) {
	proc := &mockProcessor{}
	router := newTestServer(t, proc, nil)

	rec := postAudio(t, router, "audio_file", "lecture.mp3", bytes.Repeat([]byte("a"), 2<<20))

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "audio file too large", decodeDetail(t, rec))
	assert.Empty(t, proc.gotName, "processor must not run for an oversized body")
}

func TestRequestIDIsEchoed(t *testing.T) {
	router := newTestServer(t, &mockProcessor{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsRoute(t *testing.T) {
	m := metrics.NewMetrics()
	router := newTestServer(t, &mockProcessor{}, m)

	postAudio(t, router, "audio_file", "lecture.mp3", []byte("ID3data"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/process_audio", "200")))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "voicenotes_http_requests_total")
}

// The remaining tests run the real pipeline with in-memory storage and model.

func newPipelineServer(t *testing.T, transfer blob.Transfer, model notes.Model) (*gin.Engine, string) {
	t.Helper()
	cfg := &config.Config{}
	require.NoError(t, cfg.Validate())
	cfg.Paths.Uploads = filepath.Join(t.TempDir(), "uploads")

	log := logger.Nop()
	gen := notes.New(transfer, model, cfg.Storage.Bucket, cfg.Vertex.AudioMIMEType, log)
	proc := processor.New(cfg, gen, render.NewPDF(render.Fonts{}, log), executor.New(), log, nil)
	return newTestServer(t, proc, nil), cfg.Paths.Uploads
}

func uploadsEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestPipelineRoundTrip(t *testing.T) {
	model := &fakeModel{text: "# Intro\n* Summary\n- point one\n"}
	router, uploads := newPipelineServer(t, &fakeTransfer{}, model)

	rec := postAudio(t, router, "audio_file", "standup.mp3", []byte("ID3short-sample"))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotZero(t, rec.Body.Len())
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
	assert.Equal(t, `attachment; filename="notes.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Empty(t, uploadsEntries(t, uploads))
}

func TestPipelineStorageFailure(t *testing.T) {
	model := &fakeModel{text: "# never used"}
	router, uploads := newPipelineServer(t, &fakeTransfer{uploadErr: errors.New("network down")}, model)

	rec := postAudio(t, router, "audio_file", "standup.mp3", []byte("ID3short-sample"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error processing audio", decodeDetail(t, rec))
	assert.Zero(t, model.calls)
	assert.Empty(t, uploadsEntries(t, uploads))
}

func TestPipelineEmptyNotesFails(t *testing.T) {
	router, uploads := newPipelineServer(t, &fakeTransfer{}, &fakeModel{text: ""})

	rec := postAudio(t, router, "audio_file", "standup.mp3", []byte("ID3short-sample"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, uploadsEntries(t, uploads))
}
