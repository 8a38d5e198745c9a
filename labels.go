package novel

import (
	"sync"

	"github.com/leonelquinteros/gotext"
)

// Default UI labels. They are msgids: a catalogue installed with LoadLabels
// may translate them, and untranslated ones display as written.
const (
	LabelNarrator       = "Narrator"
	LabelSend           = "Send"
	LabelContinue       = "Continue"
	LabelEnd            = "End"
	LabelSceneConcluded = "Scene concluded"
	LabelProcessing     = "Processing..."
	LabelTypeAction     = "Type your next action..."
)

var (
	labelsMu sync.RWMutex
	labels   *gotext.Po
)

// LoadLabels installs a gettext PO catalogue for the UI labels. Passing nil
// restores the English defaults.
func LoadLabels(po []byte) {
	labelsMu.Lock()
	defer labelsMu.Unlock()
	if po == nil {
		labels = nil
		return
	}
	p := gotext.NewPo()
	p.Parse(po)
	labels = p
}

// label translates msgid through the installed catalogue, then the global
// gotext storage. Both return msgid unchanged when they have no entry.
func label(msgid string) string {
	labelsMu.RLock()
	p := labels
	labelsMu.RUnlock()
	if p != nil {
		return p.Get(msgid)
	}
	return gotext.Get(msgid)
}

// Label returns the display text for msgid.
func Label(msgid string) string { return label(msgid) }
