package inputreader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/travigo/catalogue/pkg/catalogue"
)

type InputReader struct {
	commands []CommandDescription
}

type parsedBus struct {
	Name      string
	RouteType catalogue.RouteType
	StopNames []string
}

// ParseLine queues a well formed command. Malformed lines are dropped.
func (r *InputReader) ParseLine(line string) {
	command, ok := ParseCommandDescription(line)
	if !ok {
		log.Debug().Str("line", line).Msg("Dropping malformed command")
		return
	}

	r.commands = append(r.commands, command)
}

func (r *InputReader) Commands() []CommandDescription {
	return r.commands
}

// ApplyCommands loads the queued commands into the catalogue. All stops are
// added before any bus is resolved, and distances go in last, so a command
// may name a stop declared anywhere in the input.
func (r *InputReader) ApplyCommands(transportCatalogue *catalogue.TransportCatalogue) {
	stopCommands, buses := r.applyStops(transportCatalogue)
	applyBuses(transportCatalogue, buses)
	distances := applyDistances(transportCatalogue, stopCommands)

	log.Info().
		Int("stops", len(stopCommands)).
		Int("buses", len(buses)).
		Int("distances", distances).
		Msg("Applied catalogue commands")
}

func (r *InputReader) applyStops(transportCatalogue *catalogue.TransportCatalogue) ([]CommandDescription, []parsedBus) {
	var stopCommands []CommandDescription
	var buses []parsedBus

	for _, command := range r.commands {
		switch command.Command {
		case CommandStop:
			transportCatalogue.AddStop(catalogue.Stop{
				Name:        command.ID,
				Coordinates: ParseCoordinates(command.Description),
			})
			stopCommands = append(stopCommands, command)
		case CommandBus:
			routeType, stopNames := ParseRoute(command.Description)
			buses = append(buses, parsedBus{
				Name:      command.ID,
				RouteType: routeType,
				StopNames: stopNames,
			})
		default:
			log.Debug().Str("command", command.Command).Str("id", command.ID).Msg("Ignoring unknown command")
		}
	}

	return stopCommands, buses
}

func applyBuses(transportCatalogue *catalogue.TransportCatalogue, buses []parsedBus) {
	for _, bus := range buses {
		stops := make([]catalogue.StopID, 0, len(bus.StopNames))
		for _, stopName := range bus.StopNames {
			stopID := transportCatalogue.ResolveStop(stopName)
			if stopID == catalogue.NoStop {
				log.Debug().Str("bus", bus.Name).Str("stop", stopName).Msg("Bus references unknown stop")
			}
			stops = append(stops, stopID)
		}

		transportCatalogue.AddBus(catalogue.Bus{
			Name:  bus.Name,
			Stops: stops,
			Type:  bus.RouteType,
		})
	}
}

func applyDistances(transportCatalogue *catalogue.TransportCatalogue, stopCommands []CommandDescription) int {
	applied := 0

	for _, command := range stopCommands {
		from := transportCatalogue.ResolveStop(command.ID)

		for _, declaration := range ParseDistances(command.Description) {
			to := transportCatalogue.ResolveStop(declaration.ToStop)
			if to == catalogue.NoStop {
				log.Debug().Str("stop", command.ID).Str("to", declaration.ToStop).Msg("Distance references unknown stop")
				continue
			}

			transportCatalogue.SetDistance(from, to, declaration.Distance)
			applied++
		}
	}

	return applied
}

// MaxLineLength bounds a single command line
const MaxLineLength = 64 * 1024 * 1024

// NewScanner returns a line scanner that accepts lines up to MaxLineLength
func NewScanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	return scanner
}

// ReadCatalogue treats every line of reader as a command and builds a new
// catalogue from them
func ReadCatalogue(reader io.Reader) (*catalogue.TransportCatalogue, error) {
	inputReader := InputReader{}

	scanner := NewScanner(reader)
	for scanner.Scan() {
		inputReader.ParseLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalogue input: %w", err)
	}

	transportCatalogue := catalogue.New()
	inputReader.ApplyCommands(transportCatalogue)

	return transportCatalogue, nil
}
