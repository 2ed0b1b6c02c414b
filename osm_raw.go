package osmpt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// ReadOSM reads nodes, ways and relations from file of OSM XML or PBF format
func ReadOSM(filename string, verbose bool) (*Dataset, error) {
	return ReadOSMContext(context.Background(), filename, verbose)
}

// ReadOSMContext is the same as ReadOSM but allows to cancel scanning
func ReadOSMContext(ctx context.Context, filename string, verbose bool) (*Dataset, error) {
	if verbose {
		fmt.Printf("Opening file: '%s'...\n", filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open file")
	}
	defer file.Close()

	var scanner OSMScanner
	// Guess file extension and prepare correct scanner
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		scanner = osmxml.New(ctx, file)
	case ".pbf":
		scanner = osmpbf.New(ctx, file, 4)
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
	defer scanner.Close()

	if verbose {
		fmt.Printf("\tProcessing objects... ")
	}
	st := time.Now()
	objects := []osm.Object{}
	nodesNum, waysNum, relationsNum := 0, 0, 0
	for scanner.Scan() {
		obj := scanner.Object()
		switch obj.ObjectID().Type() {
		case osm.TypeNode:
			nodesNum++
		case osm.TypeWay:
			waysNum++
		case osm.TypeRelation:
			relationsNum++
		default:
			continue
		}
		objects = append(objects, obj)
	}
	err = scanner.Err()
	if err != nil {
		return nil, errors.Wrap(err, "Scanner error")
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
		fmt.Printf("Number of nodes: %d\n", nodesNum)
		fmt.Printf("Number of ways: %d\n", waysNum)
		fmt.Printf("Number of relations: %d\n", relationsNum)
	}
	return NewDataset(objects...), nil
}
