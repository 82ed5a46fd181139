package arm

import (
	"encoding/json"
	"time"
)

// armTimestampLayout is what the ARM database stores when no offset is present.
const armTimestampLayout = "2006-01-02 15:04:05"

// Track mirrors a ripped title on a job.
type Track struct {
	TrackID      int64   `json:"track_id"`
	JobID        int64   `json:"job_id"`
	TrackNumber  string  `json:"track_number"`
	Length       int     `json:"length"`
	AspectRatio  string  `json:"aspect_ratio"`
	FPS          float64 `json:"fps"`
	MainFeature  bool    `json:"main_feature"`
	Basename     string  `json:"basename"`
	Filename     string  `json:"filename"`
	OrigFilename string  `json:"orig_filename"`
	NewFilename  string  `json:"new_filename"`
	Ripped       bool    `json:"ripped"`
	Status       string  `json:"status"`
	Error        string  `json:"error"`
	Source       string  `json:"source"`
}

// Job mirrors the ARM job record.
type Job struct {
	JobID           int64  `json:"job_id"`
	ARMVersion      string `json:"arm_version"`
	CRCID           string `json:"crc_id"`
	Logfile         string `json:"logfile"`
	StartTime       string `json:"start_time"`
	StopTime        string `json:"stop_time"`
	JobLength       string `json:"job_length"`
	Status          string `json:"status"`
	Stage           string `json:"stage"`
	NoOfTitles      int    `json:"no_of_titles"`
	Title           string `json:"title"`
	TitleAuto       string `json:"title_auto"`
	TitleManual     string `json:"title_manual"`
	Year            string `json:"year"`
	YearAuto        string `json:"year_auto"`
	YearManual      string `json:"year_manual"`
	VideoType       string `json:"video_type"`
	VideoTypeAuto   string `json:"video_type_auto"`
	VideoTypeManual string `json:"video_type_manual"`
	IMDbID          string `json:"imdb_id"`
	PosterURL       string `json:"poster_url"`
	DevPath         string `json:"devpath"`
	Mountpoint      string `json:"mountpoint"`
	HasNiceTitle    bool   `json:"hasnicetitle"`
	Errors          string `json:"errors"`
	DiscType        string `json:"disctype"`
	Label           string `json:"label"`
	Path            string `json:"path"`
	Ejected         bool   `json:"ejected"`
	PID             int    `json:"pid"`
}

// DisplayTitle prefers the manual title, then the detected one, then the disc label.
func (j Job) DisplayTitle() string {
	for _, candidate := range []string{j.TitleManual, j.Title, j.TitleAuto, j.Label} {
		if candidate != "" {
			return candidate
		}
	}
	return "Untitled"
}

// ParsedStartTime returns the parsed StartTime timestamp.
func (j Job) ParsedStartTime() time.Time {
	return ParseTime(j.StartTime)
}

// JobDetail is a job with its tracks and per-job config.
type JobDetail struct {
	Job
	Tracks []Track            `json:"tracks"`
	Config map[string]*string `json:"config"`
}

// JobListResponse mirrors /api/jobs.
type JobListResponse struct {
	Jobs    []Job `json:"jobs"`
	Total   int   `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Pages   int   `json:"pages"`
}

// RipProgress mirrors /api/jobs/{id}/progress.
type RipProgress struct {
	Progress     *float64 `json:"progress"`
	Stage        string   `json:"stage"`
	TracksTotal  int      `json:"tracks_total"`
	TracksRipped int      `json:"tracks_ripped"`
}

// SystemInfo describes the ripping host.
type SystemInfo struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	CPU         string  `json:"cpu"`
	Description string  `json:"description"`
	MemTotal    float64 `json:"mem_total"`
}

// Drive mirrors an optical drive known to ARM.
type Drive struct {
	DriveID       int64  `json:"drive_id"`
	Name          string `json:"name"`
	Mount         string `json:"mount"`
	JobIDCurrent  *int64 `json:"job_id_current"`
	JobIDPrevious *int64 `json:"job_id_previous"`
	Description   string `json:"description"`
	DriveMode     string `json:"drive_mode"`
	Maker         string `json:"maker"`
	Model         string `json:"model"`
	Serial        string `json:"serial"`
	Connection    string `json:"connection"`
	ReadCD        bool   `json:"read_cd"`
	ReadDVD       bool   `json:"read_dvd"`
	ReadBD        bool   `json:"read_bd"`
	Firmware      string `json:"firmware"`
	Location      string `json:"location"`
	Stale         bool   `json:"stale"`
	MDisc         int    `json:"mdisc"`
	SerialID      string `json:"serial_id"`
	CurrentJob    *Job   `json:"current_job"`
}

// Notification mirrors an ARM notification.
type Notification struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	TriggerTime string `json:"trigger_time"`
	Seen        bool   `json:"seen"`
	Cleared     bool   `json:"cleared"`
}

// TranscoderJob is a job on the external transcoder. Unknown fields are kept
// in Extra.
type TranscoderJob struct {
	ID          int64   `json:"id"`
	InputPath   string  `json:"input_path"`
	OutputPath  string  `json:"output_path"`
	Status      string  `json:"status"`
	Progress    float64 `json:"progress"`
	Preset      string  `json:"preset"`
	Error       string  `json:"error"`
	CreatedAt   string  `json:"created_at"`
	StartedAt   string  `json:"started_at"`
	CompletedAt string  `json:"completed_at"`

	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (t *TranscoderJob) UnmarshalJSON(data []byte) error {
	type plain TranscoderJob
	var known plain
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, key := range []string{"id", "input_path", "output_path", "status", "progress", "preset", "error", "created_at", "started_at", "completed_at"} {
		delete(all, key)
	}
	*t = TranscoderJob(known)
	if len(all) > 0 {
		t.Extra = all
	}
	return nil
}

// TranscoderJobListResponse mirrors /api/transcoder/jobs.
type TranscoderJobListResponse struct {
	Jobs  []TranscoderJob `json:"jobs"`
	Total int             `json:"total"`
}

// TranscoderStatsData summarises the transcoder queue.
type TranscoderStatsData struct {
	Pending       int    `json:"pending"`
	Processing    int    `json:"processing"`
	Completed     int    `json:"completed"`
	Failed        int    `json:"failed"`
	Cancelled     int    `json:"cancelled"`
	WorkerRunning bool   `json:"worker_running"`
	CurrentJob    *int64 `json:"current_job"`
}

// TranscoderStats mirrors /api/transcoder/stats.
type TranscoderStats struct {
	Online bool                 `json:"online"`
	Stats  *TranscoderStatsData `json:"stats"`
}

// DashboardData mirrors /api/dashboard.
type DashboardData struct {
	DBAvailable       bool                 `json:"db_available"`
	ActiveJobs        []Job                `json:"active_jobs"`
	SystemInfo        *SystemInfo          `json:"system_info"`
	DrivesOnline      int                  `json:"drives_online"`
	DriveNames        map[string]string    `json:"drive_names"`
	NotificationCount int                  `json:"notification_count"`
	RippingEnabled    bool                 `json:"ripping_enabled"`
	TranscoderOnline  bool                 `json:"transcoder_online"`
	TranscoderStats   *TranscoderStatsData `json:"transcoder_stats"`
	ActiveTranscodes  []TranscoderJob      `json:"active_transcodes"`

	// Host metrics are passed through untyped; their shape varies by version.
	SystemStats           map[string]any `json:"system_stats"`
	TranscoderSystemStats map[string]any `json:"transcoder_system_stats"`
	TranscoderInfo        map[string]any `json:"transcoder_info"`
}

// EmptyDashboard is the value shown before the first successful fetch.
func EmptyDashboard() DashboardData {
	return DashboardData{
		DBAvailable:      true,
		ActiveJobs:       []Job{},
		DriveNames:       map[string]string{},
		RippingEnabled:   true,
		ActiveTranscodes: []TranscoderJob{},
	}
}

// LogFile describes a log file on the ARM host.
type LogFile struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

// LogContent mirrors /api/logs/{name}.
type LogContent struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	Lines    int    `json:"lines"`
}

// SettingsData mirrors /api/settings.
type SettingsData struct {
	ARMConfig        map[string]*string `json:"arm_config"`
	TranscoderConfig map[string]any     `json:"transcoder_config"`
}

// ParseTime parses the timestamp formats the ARM API emits. It returns the
// zero time when value is empty or unrecognised.
func ParseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation(armTimestampLayout, value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
