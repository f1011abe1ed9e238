package audio

// FramesPerChunk is the stream buffer size used for direct playback
const FramesPerChunk = 1024

// FillChunk copies frames of buf starting at offset into dst, one slice per
// channel, and pads the rest with silence. It returns the number of frames
// copied.
func FillChunk(dst [][]float32, buf *Buffer, offset int) int {
	n := 0
	for c := range dst {
		var src []float32
		if c < len(buf.Data) && offset < len(buf.Data[c]) {
			src = buf.Data[c][offset:]
		}
		copied := copy(dst[c], src)
		clear(dst[c][copied:])
		if copied > n {
			n = copied
		}
	}
	return n
}
