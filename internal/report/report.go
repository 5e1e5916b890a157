package report

// Report is one deliverable document: a title plus ordered body and
// attachment blocks destined for a single channel. Reports are value
// objects; construct one per dispatch and do not mutate it afterwards.
type Report struct {
	Title            string
	HideTitle        bool
	Blocks           []Block
	AttachmentBlocks []Block

	// Channel is the delivery target (channel ID or name).
	Channel string

	// Mentions are user IDs prefixed to the message text as <@id> markers.
	Mentions []string

	// AllowUnfurl enables link and media previews for the message.
	AllowUnfurl bool
}
