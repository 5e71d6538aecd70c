package export

import (
	"fmt"
	"io"

	"github.com/james-see/midipatterns/pkg/generator"
)

// DryRun reports what would be written without touching the filesystem
type DryRun struct {
	Out io.Writer
}

// Export implements generator.Exporter
func (d *DryRun) Export(name string, events []generator.NoteEvent, channel uint8) error {
	_, err := fmt.Fprintf(d.Out, "Would write %s.mid with %d notes (channel %d)\n", name, len(events), channel)
	return err
}
