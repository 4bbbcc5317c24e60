package processor

import (
	"context"
	"path/filepath"
	"strings"
)

func (p *implProcessor) needsTranscode(audioPath string) bool {
	return p.cfg.Audio.Transcode && strings.ToLower(filepath.Ext(audioPath)) != ".mp3"
}

func transcodedPath(audioPath string) string {
	return strings.TrimSuffix(audioPath, filepath.Ext(audioPath)) + "_temp.mp3"
}

// transcode converts any ffmpeg-readable audio to MP3 so the staged blob
// matches the audio/mpeg type declared to the model.
func (p *implProcessor) transcode(ctx context.Context, audioPath, mp3Path string) error {
	p.logger.Info(ctx, "Transcoding to MP3: %s", audioPath)

	// -vn: drop any video stream
	// -q:a 4: VBR around 165 kbps, plenty for speech
	args := []string{
		"-i", audioPath,
		"-vn",
		"-codec:a", "libmp3lame",
		"-q:a", "4",
		"-y",
		mp3Path,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.Audio.FFmpegPath, args...); err != nil {
		return &IOError{Op: "transcode audio", Path: audioPath, Err: err}
	}

	p.logger.Info(ctx, "Audio transcoded successfully: %s", mp3Path)
	return nil
}
