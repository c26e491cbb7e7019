package statreader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/travigo/catalogue/pkg/catalogue"
	"github.com/travigo/catalogue/pkg/inputreader"
	"github.com/travigo/catalogue/pkg/util"
)

// ProcessStream reads a block of base requests followed by a block of stat
// requests, each block led by its line count, and writes one answer per stat
// request.
func ProcessStream(input io.Reader, output io.Writer) (*catalogue.TransportCatalogue, error) {
	scanner := inputreader.NewScanner(input)
	writer := bufio.NewWriter(output)
	defer writer.Flush()

	baseRequestCount, err := readCount(scanner)
	if err != nil {
		return nil, fmt.Errorf("base request count: %w", err)
	}

	inputReader := inputreader.InputReader{}
	for i := 0; i < baseRequestCount && scanner.Scan(); i++ {
		inputReader.ParseLine(scanner.Text())
	}

	transportCatalogue := catalogue.New()
	inputReader.ApplyCommands(transportCatalogue)

	statRequestCount, err := readCount(scanner)
	if err == io.EOF {
		return transportCatalogue, nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat request count: %w", err)
	}

	for i := 0; i < statRequestCount && scanner.Scan(); i++ {
		if err := ParseAndPrintStat(transportCatalogue, scanner.Text(), writer); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading requests: %w", err)
	}

	return transportCatalogue, nil
}

func readCount(scanner *bufio.Scanner) (int, error) {
	for scanner.Scan() {
		line := util.Trim(scanner.Text())
		if line == "" {
			continue
		}

		count, err := strconv.Atoi(line)
		if err != nil {
			return 0, err
		}
		if count < 0 {
			return 0, fmt.Errorf("negative count %d", count)
		}

		return count, nil
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}

	return 0, io.EOF
}
