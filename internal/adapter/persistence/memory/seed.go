package memory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gestion_tramites/internal/domain/entities"
)

// Seed is the JSON layout accepted by LoadSeed.
type Seed struct {
	Clients            []entities.Client            `json:"clients"`
	Cases              []entities.Case              `json:"cases"`
	Procedures         []entities.Procedure         `json:"procedures"`
	ProcedureDocuments []entities.ProcedureDocument `json:"procedure_documents"`
	ClientDocuments    []entities.ClientDocument    `json:"client_documents"`
}

// LoadSeed fills the store from r. Rows with an empty id are rejected.
func (s *Store) LoadSeed(r io.Reader) error {
	var seed Seed
	if err := json.NewDecoder(r).Decode(&seed); err != nil {
		return fmt.Errorf("decode seed: %w", err)
	}
	return s.Apply(seed)
}

// LoadSeedFile is LoadSeed over the file at path.
func (s *Store) LoadSeedFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return s.LoadSeed(f)
}

func (s *Store) Apply(seed Seed) error {
	for _, c := range seed.Clients {
		if c.ID == "" {
			return errors.New("seed: client without id")
		}
		s.PutClient(c)
	}
	for _, c := range seed.Cases {
		if c.ID == "" {
			return errors.New("seed: case without id")
		}
		s.PutCase(c)
	}
	for _, p := range seed.Procedures {
		if p.ID == "" {
			return errors.New("seed: procedure without id")
		}
		s.PutProcedure(p)
	}
	for _, d := range seed.ProcedureDocuments {
		if d.ID == "" {
			return errors.New("seed: procedure document without id")
		}
		s.PutProcedureDocument(d)
	}
	for _, d := range seed.ClientDocuments {
		if d.ID == "" {
			return errors.New("seed: client document without id")
		}
		s.PutClientDocument(d)
	}
	return nil
}
