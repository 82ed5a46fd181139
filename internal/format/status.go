package format

import "strings"

// Category groups the many status strings ARM and the transcoder report.
type Category string

const (
	CategoryActive      Category = "active"
	CategoryTranscoding Category = "transcoding"
	CategorySuccess     Category = "success"
	CategoryFailed      Category = "failed"
	CategoryWaiting     Category = "waiting"
	CategoryUnknown     Category = "unknown"
)

// StatusCategory classifies a job or transcode status, case-insensitively.
func StatusCategory(status string) Category {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "active", "ripping", "processing":
		return CategoryActive
	case "transcoding":
		return CategoryTranscoding
	case "success", "completed", "complete":
		return CategorySuccess
	case "fail", "failed", "error":
		return CategoryFailed
	case "waiting", "pending":
		return CategoryWaiting
	default:
		return CategoryUnknown
	}
}

var activeStatuses = map[string]bool{
	"active":      true,
	"ripping":     true,
	"processing":  true,
	"transcoding": true,
	"pending":     true,
	"waiting":     true,
}

// IsJobActive reports whether a job with this status is still in the pipeline.
func IsJobActive(status string) bool {
	return activeStatuses[strings.ToLower(strings.TrimSpace(status))]
}

var videoTypeLabels = map[string]string{
	"movie":  "Movie",
	"series": "Series",
	"music":  "Music",
	"data":   "Data",
}

// VideoTypeLabel names a job's video type, falling back to "Disc".
func VideoTypeLabel(videoType string) string {
	if label, ok := videoTypeLabels[strings.ToLower(strings.TrimSpace(videoType))]; ok {
		return label
	}
	return "Disc"
}

var discTypeLabels = map[string]string{
	"dvd":      "DVD",
	"bluray":   "Blu-ray",
	"bluray4k": "4K UHD",
	"music":    "Music CD",
	"data":     "Data",
}

// DiscTypeLabel names a disc type. Unknown types are returned as given and
// an empty type is "Unknown".
func DiscTypeLabel(discType string) string {
	if discType == "" {
		return "Unknown"
	}
	if label, ok := discTypeLabels[strings.ToLower(discType)]; ok {
		return label
	}
	return discType
}
