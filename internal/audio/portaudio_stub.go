//go:build !portaudio

package audio

// NewPortAudioPlayer is only available in builds with the portaudio tag
func NewPortAudioPlayer() (Player, error) {
	return nil, ErrNoPlayer
}
