package novel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScript() Script {
	return Script{ID: "s1", Entries: []ScriptEntry{
		{SpeakerID: "a", Message: "A"},
		{SpeakerID: "b", Message: "B"},
		{SpeakerID: "a", Message: "C"},
	}}
}

func TestOwningStoreCopiesInput(t *testing.T) {
	in := sampleScript()
	st := NewOwningStore(in)
	in.Entries[0].Message = "changed"
	assert.Equal(t, "A", st.Script().Entries[0].Message)
	assert.True(t, st.Owning())
}

func TestOwningStoreUpdateMessageCopyOnWrite(t *testing.T) {
	st := NewOwningStore(sampleScript())
	before := st.Script()
	st.UpdateMessage(1, "edited")

	assert.Equal(t, "edited", st.Script().Entries[1].Message)
	assert.Equal(t, "B", before.Entries[1].Message, "earlier snapshot must not change")

	st.UpdateMessage(7, "ignored")
	assert.Equal(t, 3, st.Script().Len())
}

func TestDelegatingStoreForwards(t *testing.T) {
	var edits []string
	var replaced []Script
	st := NewDelegatingStore(sampleScript(), SinkFuncs{
		OnUpdateMessage: func(i int, text string) { edits = append(edits, text) },
		OnReplace:       func(s Script) { replaced = append(replaced, s) },
	})
	assert.False(t, st.Owning())

	st.UpdateMessage(0, "X")
	require.Equal(t, []string{"X"}, edits)
	assert.Equal(t, "A", st.Script().Entries[0].Message, "edits wait for the caller")

	next := sampleScript().Truncate(1)
	st.Replace(next)
	require.Len(t, replaced, 1)
	assert.Equal(t, 1, replaced[0].Len())
	assert.Equal(t, 1, st.Script().Len())

	st.SetScript(sampleScript())
	assert.Equal(t, 3, st.Script().Len())
}

func TestSinkFuncsNilSafe(t *testing.T) {
	var f SinkFuncs
	assert.NotPanics(t, func() {
		f.UpdateMessage(0, "x")
		f.ReplaceScript(Script{})
	})
}

func TestScriptTruncateClamps(t *testing.T) {
	s := sampleScript()
	assert.Equal(t, 0, s.Truncate(-1).Len())
	assert.Equal(t, 2, s.Truncate(2).Len())
	assert.Equal(t, 3, s.Truncate(10).Len())

	tr := s.Truncate(2)
	tr.Entries[0].Message = "x"
	assert.Equal(t, "A", s.Entries[0].Message, "Truncate must copy")
}

func TestScriptEntry(t *testing.T) {
	s := sampleScript()
	e, ok := s.Entry(2)
	assert.True(t, ok)
	assert.Equal(t, "C", e.Message)
	_, ok = s.Entry(3)
	assert.False(t, ok)
	_, ok = s.Entry(-1)
	assert.False(t, ok)
}
