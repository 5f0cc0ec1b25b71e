package services

import (
	"errors"
	"testing"

	"medwebcare/models"
	"medwebcare/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDevices hands out tracks the test keeps references to, so it can
// assert their state after the session tears down.
type fakeDevices struct {
	tracks []*models.MediaTrack
	err    error
}

func (f *fakeDevices) GetUserMedia() ([]*models.MediaTrack, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tracks = []*models.MediaTrack{
		{Kind: models.AudioTrack, Enabled: true},
		{Kind: models.VideoTrack, Enabled: true},
	}
	return f.tracks, nil
}

func TestCallLifecycle_EndStopsEveryTrack(t *testing.T) {
	devices := &fakeDevices{}
	m := NewCallManager(devices)

	session, err := m.Start("alice")
	require.NoError(t, err)
	assert.Equal(t, models.CallActive, session.State)
	assert.True(t, session.HasStream)

	require.NoError(t, m.End("alice", session.ID))

	for _, track := range devices.tracks {
		assert.True(t, track.Stopped)
		assert.False(t, track.Enabled)
	}

	// the session is gone after close
	_, err = m.Messages("alice", session.ID)
	assert.EqualError(t, err, util.CALL_SESSION_NOT_FOUND)
}

func TestStartCall_DeviceDenial(t *testing.T) {
	m := NewCallManager(&fakeDevices{err: errors.New("NotAllowedError")})

	_, err := m.Start("alice")
	assert.EqualError(t, err, util.MEDIA_DEVICE_ACCESS_DENIED)
	assert.Empty(t, m.sessions)
}

func TestToggles_FlipOnlyTheirTrack(t *testing.T) {
	devices := &fakeDevices{}
	m := NewCallManager(devices)
	session, err := m.Start("alice")
	require.NoError(t, err)

	info, err := m.ToggleMute("alice", session.ID)
	require.NoError(t, err)
	assert.True(t, info.IsMuted)
	assert.False(t, info.IsVideoOff)
	assert.False(t, devices.tracks[0].Enabled) // audio
	assert.True(t, devices.tracks[1].Enabled)  // video untouched

	info, err = m.ToggleVideo("alice", session.ID)
	require.NoError(t, err)
	assert.True(t, info.IsVideoOff)
	assert.False(t, devices.tracks[1].Enabled)

	// toggling back restores the track
	info, err = m.ToggleMute("alice", session.ID)
	require.NoError(t, err)
	assert.False(t, info.IsMuted)
	assert.True(t, devices.tracks[0].Enabled)
}

func TestCallChat_LocalOnlyAndOrdered(t *testing.T) {
	m := NewCallManager(&fakeDevices{})
	session, err := m.Start("alice")
	require.NoError(t, err)

	first, err := m.SendMessage("alice", session.ID, "hello", "")
	require.NoError(t, err)
	assert.Equal(t, "You", first.Sender)
	assert.NotEmpty(t, first.ID)

	_, err = m.SendMessage("alice", session.ID, "how are you", "You")
	require.NoError(t, err)

	messages, err := m.Messages("alice", session.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "hello", messages[0].Text)
	assert.Equal(t, "how are you", messages[1].Text)

	// another user cannot see the session at all
	_, err = m.Messages("bob", session.ID)
	assert.EqualError(t, err, util.CALL_SESSION_NOT_FOUND)
}

func TestEndAll_ReleasesEveryOwnedSession(t *testing.T) {
	devices := &fakeDevices{}
	m := NewCallManager(devices)
	session, err := m.Start("alice")
	require.NoError(t, err)

	m.EndAll("alice")

	for _, track := range devices.tracks {
		assert.True(t, track.Stopped)
	}
	_, err = m.Messages("alice", session.ID)
	assert.EqualError(t, err, util.CALL_SESSION_NOT_FOUND)
}
