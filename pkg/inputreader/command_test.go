package inputreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommandDescription(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected CommandDescription
		ok       bool
	}{
		{
			name:     "stop",
			line:     "Stop Tolstopaltsevo: 55.611087, 37.20829",
			expected: CommandDescription{Command: "Stop", ID: "Tolstopaltsevo", Description: " 55.611087, 37.20829"},
			ok:       true,
		},
		{
			name:     "bus with spaces in name",
			line:     "Bus 750 express: Tolstopaltsevo - Marushkino",
			expected: CommandDescription{Command: "Bus", ID: "750 express", Description: " Tolstopaltsevo - Marushkino"},
			ok:       true,
		},
		{
			name:     "padded id",
			line:     "Stop    Rasskazovka  : 55.632761, 37.333324",
			expected: CommandDescription{Command: "Stop", ID: "Rasskazovka", Description: " 55.632761, 37.333324"},
			ok:       true,
		},
		{
			name:     "empty description",
			line:     "Stop A:",
			expected: CommandDescription{Command: "Stop", ID: "A", Description: ""},
			ok:       true,
		},
		{name: "no colon", line: "Stop Tolstopaltsevo 55.611087, 37.20829"},
		{name: "no space", line: "Stop:55.611087"},
		{name: "space after colon", line: "Stop:A 55.611087"},
		{name: "empty id", line: "Stop    : 55.611087, 37.20829"},
		{name: "empty line", line: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			command, ok := ParseCommandDescription(test.line)

			assert.Equal(t, test.ok, ok)
			assert.Equal(t, test.expected, command)
		})
	}
}
