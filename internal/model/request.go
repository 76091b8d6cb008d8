package model

// UploadRequest describes one upload attempt. It is built from config on every
// invocation and never outlives it.
type UploadRequest struct {
	Bucket     string `json:"bucket"`
	Key        string `json:"key"`
	SourcePath string `json:"sourcePath"`
}
