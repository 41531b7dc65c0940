package seeder

// Defaults returns the seeders for the built-in reference data, in run order.
func Defaults() []Seeder {
	return []Seeder{
		ClientsSeeder{},
		CandidatesSeeder{},
	}
}
