package novel

// ScriptStore holds the script the controller plays. Which side owns the
// entries is fixed when the controller is built:
//
//   - OwningStore keeps a private copy and applies every mutation to it.
//   - DelegatingStore forwards every mutation to a ScriptSink and keeps
//     rendering whatever script the caller last pushed with SetScript.
type ScriptStore interface {
	// Script returns the script to render.
	Script() Script
	// SetScript installs a script pushed by the caller.
	SetScript(s Script)
	// UpdateMessage replaces the message of entry i.
	UpdateMessage(i int, text string)
	// Replace installs a script produced by the controller itself (a
	// submission or a continuation result).
	Replace(s Script)
	// Owning reports whether mutations are applied locally.
	Owning() bool
}

// ScriptSink receives the mutations of a DelegatingStore. The caller is
// expected to apply them to its own script and push the result back through
// Controller.SetScript.
type ScriptSink interface {
	UpdateMessage(i int, text string)
	ReplaceScript(s Script)
}

// SinkFuncs adapts plain functions to ScriptSink. Nil fields are ignored.
type SinkFuncs struct {
	OnUpdateMessage func(i int, text string)
	OnReplace       func(s Script)
}

func (f SinkFuncs) UpdateMessage(i int, text string) {
	if f.OnUpdateMessage != nil {
		f.OnUpdateMessage(i, text)
	}
}

func (f SinkFuncs) ReplaceScript(s Script) {
	if f.OnReplace != nil {
		f.OnReplace(s)
	}
}

// --- OwningStore ---

// OwningStore is the uncontrolled variant: it owns a private copy.
type OwningStore struct {
	script Script
}

// NewOwningStore copies s into a new store.
func NewOwningStore(s Script) *OwningStore {
	return &OwningStore{script: s.Clone()}
}

func (o *OwningStore) Script() Script    { return o.script }
func (o *OwningStore) SetScript(s Script) { o.script = s.Clone() }
func (o *OwningStore) Replace(s Script)   { o.script = s.Clone() }
func (o *OwningStore) Owning() bool       { return true }

func (o *OwningStore) UpdateMessage(i int, text string) {
	if i < 0 || i >= len(o.script.Entries) {
		return
	}
	// Copy on write so scripts handed out earlier stay untouched.
	o.script = o.script.Clone()
	o.script.Entries[i].Message = text
}

// --- DelegatingStore ---

// DelegatingStore is the controlled variant: the caller owns the script.
type DelegatingStore struct {
	script Script
	sink   ScriptSink
}

// NewDelegatingStore renders s and forwards mutations to sink.
func NewDelegatingStore(s Script, sink ScriptSink) *DelegatingStore {
	return &DelegatingStore{script: s.Clone(), sink: sink}
}

func (d *DelegatingStore) Script() Script     { return d.script }
func (d *DelegatingStore) SetScript(s Script) { d.script = s.Clone() }
func (d *DelegatingStore) Owning() bool       { return false }

func (d *DelegatingStore) UpdateMessage(i int, text string) {
	d.sink.UpdateMessage(i, text)
}

// Replace forwards s to the sink. Entries that the controller itself
// produces (a submitted line, a continuation result) are also shown at once,
// otherwise the cursor would point past the end until the caller pushes the
// script back.
func (d *DelegatingStore) Replace(s Script) {
	d.script = s.Clone()
	d.sink.ReplaceScript(s.Clone())
}
