package novel

import "testing"

const frenchPO = `
msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: fr\n"

msgid "Narrator"
msgstr "Narrateur"

msgid "Send"
msgstr "Envoyer"
`

func TestLabelsDefault(t *testing.T) {
	LoadLabels(nil)
	for _, id := range []string{LabelNarrator, LabelSend, LabelContinue, LabelEnd, LabelSceneConcluded, LabelProcessing, LabelTypeAction} {
		if got := Label(id); got != id {
			t.Errorf("Label(%q) = %q without a catalogue", id, got)
		}
	}
}

func TestLoadLabels(t *testing.T) {
	LoadLabels([]byte(frenchPO))
	defer LoadLabels(nil)

	if got := Label(LabelNarrator); got != "Narrateur" {
		t.Errorf("Label(Narrator) = %q, want Narrateur", got)
	}
	if got := Label(LabelSend); got != "Envoyer" {
		t.Errorf("Label(Send) = %q, want Envoyer", got)
	}
	if got := Label(LabelEnd); got != LabelEnd {
		t.Errorf("untranslated Label(End) = %q, want %q", got, LabelEnd)
	}
}

func TestViewUsesLabels(t *testing.T) {
	LoadLabels([]byte(frenchPO))
	defer LoadLabels(nil)

	c := newTestController(t, Script{ID: "x", Entries: []ScriptEntry{{Message: "hi"}}}, Options{})
	v := c.View()
	if v.Nameplate != "Narrateur" {
		t.Errorf("Nameplate = %q, want Narrateur", v.Nameplate)
	}
	c.SetInput("go")
	if got := c.View().Button.Label; got != "Envoyer" {
		t.Errorf("button label = %q, want Envoyer", got)
	}
}
