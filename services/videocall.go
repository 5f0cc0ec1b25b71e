package services

import (
	"errors"
	"log"
	"sync"
	"time"

	"medwebcare/models"
	"medwebcare/util"

	"github.com/google/uuid"
)

// MediaDevices acquires the local camera and microphone tracks for a
// call session. Swappable so tests can simulate a denied permission.
type MediaDevices interface {
	GetUserMedia() ([]*models.MediaTrack, error)
}

type localMediaDevices struct{}

func (localMediaDevices) GetUserMedia() ([]*models.MediaTrack, error) {
	return []*models.MediaTrack{
		{Kind: models.AudioTrack, Enabled: true},
		{Kind: models.VideoTrack, Enabled: true},
	}, nil
}

// CallSession holds the per-call local state: the acquired tracks, the
// two toggle booleans and the local-only chat. Nothing here is persisted
// or transmitted; ending the session discards all of it.
type CallSession struct {
	ID         string
	OwnerID    string
	State      models.CallState
	tracks     []*models.MediaTrack
	isMuted    bool
	isVideoOff bool
	messages   []models.ChatMessage
}

func (s *CallSession) info() models.CallSessionInfo {
	return models.CallSessionInfo{
		ID:         s.ID,
		State:      s.State,
		IsMuted:    s.isMuted,
		IsVideoOff: s.isVideoOff,
		HasStream:  len(s.tracks) > 0,
	}
}

// CallManager owns every live call session in the process.
type CallManager struct {
	mu       sync.Mutex
	devices  MediaDevices
	sessions map[string]*CallSession
}

func NewCallManager(devices MediaDevices) *CallManager {
	return &CallManager{devices: devices, sessions: make(map[string]*CallSession)}
}

// Calls is the process-wide manager used by the controllers.
var Calls = NewCallManager(localMediaDevices{})

func stopTracks(tracks []*models.MediaTrack) {
	for _, t := range tracks {
		t.Stopped = true
		t.Enabled = false
	}
}

/*
* Transition Inactive to Active: acquire camera and microphone
* A device error releases whatever was acquired and leaves no session
 */
func (m *CallManager) Start(ownerID string) (models.CallSessionInfo, error) {
	tracks, err := m.devices.GetUserMedia()
	if err != nil {
		log.Println("Error while acquiring media devices:", err)
		stopTracks(tracks)
		return models.CallSessionInfo{}, errors.New(util.MEDIA_DEVICE_ACCESS_DENIED)
	}

	session := &CallSession{
		ID:      uuid.NewString(),
		OwnerID: ownerID,
		State:   models.CallActive,
		tracks:  tracks,
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()
	return session.info(), nil
}

func (m *CallManager) get(ownerID, sessionID string) (*CallSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok || session.OwnerID != ownerID {
		return nil, errors.New(util.CALL_SESSION_NOT_FOUND)
	}
	return session, nil
}

/*
* Flip the enabled flag of every audio track and the mute boolean
* Affects nothing beyond the local stream
 */
func (m *CallManager) ToggleMute(ownerID, sessionID string) (models.CallSessionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.get(ownerID, sessionID)
	if err != nil {
		return models.CallSessionInfo{}, err
	}
	for _, t := range session.tracks {
		if t.Kind == models.AudioTrack {
			t.Enabled = !t.Enabled
		}
	}
	session.isMuted = !session.isMuted
	return session.info(), nil
}

/*
* Flip the enabled flag of every video track and the video-off boolean
 */
func (m *CallManager) ToggleVideo(ownerID, sessionID string) (models.CallSessionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.get(ownerID, sessionID)
	if err != nil {
		return models.CallSessionInfo{}, err
	}
	for _, t := range session.tracks {
		if t.Kind == models.VideoTrack {
			t.Enabled = !t.Enabled
		}
	}
	session.isVideoOff = !session.isVideoOff
	return session.info(), nil
}

/*
* Append to the in-memory chat, never transmitted anywhere
 */
func (m *CallManager) SendMessage(ownerID, sessionID, text, sender string) (models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.get(ownerID, sessionID)
	if err != nil {
		return models.ChatMessage{}, err
	}
	if sender == "" {
		sender = "You"
	}
	message := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
	session.messages = append(session.messages, message)
	return message, nil
}

func (m *CallManager) Messages(ownerID, sessionID string) ([]models.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.get(ownerID, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]models.ChatMessage, len(session.messages))
	copy(out, session.messages)
	return out, nil
}

/*
* Transition back to Inactive: stop and release every track
* unconditionally and discard the chat
 */
func (m *CallManager) End(ownerID, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, err := m.get(ownerID, sessionID)
	if err != nil {
		return err
	}
	stopTracks(session.tracks)
	session.State = models.CallInactive
	session.messages = nil
	delete(m.sessions, sessionID)
	return nil
}

/*
* Release every session an owner still holds, teardown path for sign-out
 */
func (m *CallManager) EndAll(ownerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, session := range m.sessions {
		if session.OwnerID == ownerID {
			stopTracks(session.tracks)
			session.State = models.CallInactive
			session.messages = nil
			delete(m.sessions, id)
		}
	}
}
