package models

import "time"

// CallState is the two-state machine of a call session.
type CallState string

const (
	CallInactive CallState = "inactive"
	CallActive   CallState = "active"
)

// TrackKind distinguishes the two local media tracks.
type TrackKind string

const (
	AudioTrack TrackKind = "audio"
	VideoTrack TrackKind = "video"
)

// MediaTrack is one acquired local track. Enabled mirrors the mute and
// video-off toggles; Stopped becomes true exactly once, on release.
type MediaTrack struct {
	Kind    TrackKind `json:"kind"`
	Enabled bool      `json:"enabled"`
	Stopped bool      `json:"stopped"`
}

// ChatMessage is one entry of the call's local-only chat. Messages are
// never transmitted anywhere and are discarded when the session ends.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// CallSessionInfo is the session snapshot returned to the caller.
type CallSessionInfo struct {
	ID         string    `json:"id"`
	State      CallState `json:"state"`
	IsMuted    bool      `json:"is_muted"`
	IsVideoOff bool      `json:"is_video_off"`
	HasStream  bool      `json:"has_stream"`
}
