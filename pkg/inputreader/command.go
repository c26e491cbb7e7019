package inputreader

import (
	"strings"

	"github.com/travigo/catalogue/pkg/util"
)

const (
	CommandStop = "Stop"
	CommandBus  = "Bus"
)

// CommandDescription is one raw ingestion line split into its parts.
// Description is kept untrimmed, everything after the colon.
type CommandDescription struct {
	Command     string
	ID          string
	Description string
}

// ParseCommandDescription splits "<Command> <ID>: <Description>". The line is
// rejected when there is no colon, no space before the colon or an empty ID.
func ParseCommandDescription(line string) (CommandDescription, bool) {
	colonPos := strings.IndexByte(line, ':')
	if colonPos == -1 {
		return CommandDescription{}, false
	}

	spacePos := strings.IndexByte(line, ' ')
	if spacePos == -1 || spacePos >= colonPos {
		return CommandDescription{}, false
	}

	id := util.Trim(line[spacePos:colonPos])
	if id == "" {
		return CommandDescription{}, false
	}

	return CommandDescription{
		Command:     line[:spacePos],
		ID:          id,
		Description: line[colonPos+1:],
	}, true
}
