package hackbright

// Student is identified by their GitHub account name.
type Student struct {
	FirstName string
	LastName  string
	Github    string
}

// Project is identified by its title.
type Project struct {
	Title       string
	Description string
}

// Grade joins a student and a project. The score is kept as text; the
// store decides whether it must be numeric.
type Grade struct {
	StudentGithub string
	ProjectTitle  string
	Grade         string
}
