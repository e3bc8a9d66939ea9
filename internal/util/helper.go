package util

// CopyTerminated copies src into dst the way strlcpy does: at most len(dst)-1 bytes of
// src followed by a zero terminator.
//
// It returns the number of bytes copied from src, not counting the terminator.
// Nothing is written when dst is empty.
func CopyTerminated(dst []byte, src []byte) int {
	if len(dst) == 0 {
		return 0
	}

	n := copy(dst[:len(dst)-1], src)
	dst[n] = 0

	return n
}

// Terminated returns the part of buf that precedes the first zero byte, or buf itself
// when it holds no zero byte.
func Terminated(buf []byte) []byte {
	for i, b := range buf {
		if b == 0 {
			return buf[:i]
		}
	}
	return buf
}
