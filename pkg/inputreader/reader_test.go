package inputreader

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/catalogue/pkg/catalogue"
)

func TestInputReaderDropsMalformedLines(t *testing.T) {
	reader := InputReader{}
	reader.ParseLine("Stop A: 0, 0")
	reader.ParseLine("garbage")
	reader.ParseLine("Stop: 0, 0")
	reader.ParseLine("Bus 1: A - B")

	assert.Equal(t, []CommandDescription{
		{Command: "Stop", ID: "A", Description: " 0, 0"},
		{Command: "Bus", ID: "1", Description: " A - B"},
	}, reader.Commands())
}

func TestApplyCommandsForwardReferences(t *testing.T) {
	reader := InputReader{}
	reader.ParseLine("Bus 256: Biryulyovo Zapadnoye > Biryusinka > Universam > Biryulyovo Zapadnoye")
	reader.ParseLine("Stop Biryulyovo Zapadnoye: 55.574371, 37.6517, 7500m to Rossoshanskaya ulitsa, 1800m to Biryusinka")
	reader.ParseLine("Stop Biryusinka: 55.581065, 37.64839, 750m to Universam")
	reader.ParseLine("Stop Universam: 55.587655, 37.645687, 5600m to Rossoshanskaya ulitsa, 900m to Biryulyovo Zapadnoye")
	reader.ParseLine("Stop Rossoshanskaya ulitsa: 55.595579, 37.605757")

	transportCatalogue := catalogue.New()
	reader.ApplyCommands(transportCatalogue)

	bus := transportCatalogue.GetBusByName("256")
	require.NotNil(t, bus)
	assert.Equal(t, catalogue.RouteTypeRing, bus.Type)
	require.Len(t, bus.Stops, 4)
	for _, stopID := range bus.Stops {
		assert.NotEqual(t, catalogue.NoStop, stopID)
	}

	zapadnoye := transportCatalogue.ResolveStop("Biryulyovo Zapadnoye")
	biryusinka := transportCatalogue.ResolveStop("Biryusinka")
	universam := transportCatalogue.ResolveStop("Universam")
	ulitsa := transportCatalogue.ResolveStop("Rossoshanskaya ulitsa")

	assert.Equal(t, 1800, transportCatalogue.GetDistance(zapadnoye, biryusinka))
	assert.Equal(t, 750, transportCatalogue.GetDistance(biryusinka, universam))
	assert.Equal(t, 900, transportCatalogue.GetDistance(universam, zapadnoye))
	assert.Equal(t, 7500, transportCatalogue.GetDistance(ulitsa, zapadnoye))
	assert.Len(t, transportCatalogue.Distances(), 5)
}

func TestApplyCommandsUnknownStop(t *testing.T) {
	reader := InputReader{}
	reader.ParseLine("Stop A: 0, 0, 100m to Nowhere")
	reader.ParseLine("Bus X: A - Nowhere")

	transportCatalogue := catalogue.New()
	reader.ApplyCommands(transportCatalogue)

	bus := transportCatalogue.GetBusByName("X")
	require.NotNil(t, bus)
	assert.Equal(t, catalogue.RouteTypeThereAndBack, bus.Type)
	assert.Equal(t, []catalogue.StopID{
		transportCatalogue.ResolveStop("A"),
		catalogue.NoStop,
		transportCatalogue.ResolveStop("A"),
	}, bus.Stops)
	assert.Empty(t, transportCatalogue.Distances())
}

func TestApplyCommandsMalformedCoordinates(t *testing.T) {
	reader := InputReader{}
	reader.ParseLine("Stop A: somewhere")

	transportCatalogue := catalogue.New()
	reader.ApplyCommands(transportCatalogue)

	stop := transportCatalogue.GetStopByName("A")
	require.NotNil(t, stop)
	assert.True(t, math.IsNaN(stop.Coordinates.Lat))
}

func TestReadCatalogue(t *testing.T) {
	input := strings.Join([]string{
		"Stop A: 0,0\r",
		"Stop B: 0,1",
		"Stop A: 0,0, 1000m to B",
		"Bus L: A - B",
		"not a command",
	}, "\n")

	transportCatalogue, err := ReadCatalogue(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, transportCatalogue.Stops(), 3)

	a := transportCatalogue.GetStopByName("A")
	require.NotNil(t, a)
	assert.Equal(t, catalogue.StopID(2), a.ID)

	bus := transportCatalogue.GetBusByName("L")
	require.NotNil(t, bus)
	assert.Equal(t, []catalogue.StopID{a.ID, transportCatalogue.ResolveStop("B"), a.ID}, bus.Stops)
	assert.Equal(t, 1000, transportCatalogue.GetDistance(transportCatalogue.ResolveStop("B"), a.ID))
}

func TestReadCatalogueLongLine(t *testing.T) {
	stopNames := make([]string, 0, 20000)
	for i := 0; i < 20000; i++ {
		stopNames = append(stopNames, fmt.Sprintf("Stop %d", i))
	}
	busLine := "Bus long: " + strings.Join(stopNames, " > ")
	require.Greater(t, len(busLine), 64*1024)

	transportCatalogue, err := ReadCatalogue(strings.NewReader("Stop 0: 0, 0\n" + busLine + "\n"))
	require.NoError(t, err)

	bus := transportCatalogue.GetBusByName("long")
	require.NotNil(t, bus)
	assert.Len(t, bus.Stops, 20000)
}
