package sdlhost

import (
	"fmt"
	"log/slog"

	"github.com/veandco/go-sdl2/mix"

	"github.com/BrandonKowalski/menunav/pkg/menunav"
	"github.com/BrandonKowalski/menunav/pkg/menunav/internal"
)

// Mixer plays cues through SDL_mixer. Music cues stream and replace each
// other; all other cues are short samples mixed on a free channel.
type Mixer struct {
	chunks map[menunav.Cue]*mix.Chunk
	music  map[menunav.Cue]*mix.Music
	logger *slog.Logger
}

// OpenMixer opens the audio device and preloads every cue of cfg.
func OpenMixer(cfg menunav.Config) (*Mixer, error) {
	if err := mix.Init(mix.INIT_MP3 | mix.INIT_OGG); err != nil {
		return nil, fmt.Errorf("init mixer: %w", err)
	}
	if err := mix.OpenAudio(mix.DEFAULT_FREQUENCY, mix.DEFAULT_FORMAT, mix.DEFAULT_CHANNELS, 1024); err != nil {
		mix.Quit()
		return nil, fmt.Errorf("open audio: %w", err)
	}

	m := &Mixer{
		chunks: make(map[menunav.Cue]*mix.Chunk),
		music:  make(map[menunav.Cue]*mix.Music),
		logger: internal.GetLogger(),
	}

	for _, cue := range cfg.EnterCues {
		if _, loaded := m.music[cue]; loaded || cue == "" {
			continue
		}
		music, err := mix.LoadMUS(string(cue))
		if err != nil {
			m.logger.Warn("Failed to load music", "cue", cue, "error", err)
			continue
		}
		m.music[cue] = music
	}

	if cfg.ClickCue != "" {
		chunk, err := mix.LoadWAV(string(cfg.ClickCue))
		if err != nil {
			m.logger.Warn("Failed to load sound", "cue", cfg.ClickCue, "error", err)
		} else {
			m.chunks[cfg.ClickCue] = chunk
		}
	}

	return m, nil
}

// Play starts a cue and returns immediately. Unknown cues are ignored.
func (m *Mixer) Play(cue menunav.Cue) {
	if music, ok := m.music[cue]; ok {
		if err := music.Play(1); err != nil {
			m.logger.Warn("Failed to play music", "cue", cue, "error", err)
		}
		return
	}
	if chunk, ok := m.chunks[cue]; ok {
		if _, err := chunk.Play(-1, 0); err != nil {
			m.logger.Debug("Failed to play sound", "cue", cue, "error", err)
		}
		return
	}
	m.logger.Debug("Ignoring unknown cue", "cue", cue)
}

// Close stops playback and releases the audio device.
func (m *Mixer) Close() {
	mix.HaltMusic()
	mix.HaltChannel(-1)
	for _, music := range m.music {
		music.Free()
	}
	for _, chunk := range m.chunks {
		chunk.Free()
	}
	mix.CloseAudio()
	mix.Quit()
}
