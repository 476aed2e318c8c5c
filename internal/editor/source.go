package editor

// SelectSource maps a control tag to an image source. Tag 0 is the camera;
// every other value, including negative and unknown tags, falls back to the
// photo library.
func SelectSource(tag int) Source {
	switch tag {
	case 0:
		return SourceCapture
	default:
		return SourceLibrary
	}
}
