package kernel

type Email string

func (e Email) String() string { return string(e) }

type JobTitle string

type JobDescription string

type CompanyName string

type JobLocation string

// JobEmbedding is the vector representation of a job description,
// used for similarity search.
type JobEmbedding []float32
