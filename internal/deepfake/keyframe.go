package deepfake

import "bytes"

var (
	jpegSOI = []byte{0xFF, 0xD8, 0xFF}
	jpegEOI = []byte{0xFF, 0xD9}
)

// ExtractJPEGKeyframe returns the first JPEG-encoded frame embedded in a raw
// video byte buffer, or nil when no SOI/EOI marker pair exists. MP4/WebM
// containers frequently carry JPEG keyframes detectable this way without a
// demuxer.
func ExtractJPEGKeyframe(video []byte) []byte {
	start := bytes.Index(video, jpegSOI)
	if start < 0 {
		return nil
	}
	end := bytes.Index(video[start:], jpegEOI)
	if end < 0 {
		return nil
	}
	return video[start : start+end+len(jpegEOI)]
}
