package seeder

import (
	"fmt"
	"os"

	"staff-flow/internal/domain/candidate"
	"staff-flow/internal/domain/client"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Clients []struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Industry string `yaml:"industry"`
	} `yaml:"clients"`
	Candidates []struct {
		ID       string   `yaml:"id"`
		FullName string   `yaml:"full_name"`
		Email    string   `yaml:"email"`
		Skills   []string `yaml:"skills"`
	} `yaml:"candidates"`
}

// LoadSeedFile reads a YAML file with clients and candidates and returns seeders
// carrying its contents. Entries without an id are skipped.
func LoadSeedFile(path string) (ClientsSeeder, CandidatesSeeder, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return ClientsSeeder{}, CandidatesSeeder{}, fmt.Errorf("read seed file: %w", err)
	}

	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return ClientsSeeder{}, CandidatesSeeder{}, fmt.Errorf("parse seed file: %w", err)
	}

	clients := make([]client.Client, 0, len(f.Clients))
	for _, c := range f.Clients {
		if c.ID == "" {
			continue
		}
		clients = append(clients, client.Client{ID: c.ID, Name: c.Name, Industry: c.Industry})
	}

	candidates := make([]candidate.Candidate, 0, len(f.Candidates))
	for _, c := range f.Candidates {
		if c.ID == "" {
			continue
		}
		candidates = append(candidates, candidate.Candidate{
			ID:       c.ID,
			FullName: c.FullName,
			Email:    c.Email,
			Skills:   c.Skills,
		})
	}

	return ClientsSeeder{Items: clients}, CandidatesSeeder{Items: candidates}, nil
}
