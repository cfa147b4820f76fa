package catalog

// Category names used by the built-in entries.
const (
	CategoryLanguage     = "Programming Languages"
	CategoryFrontend     = "Frontend"
	CategoryBackend      = "Backend"
	CategoryInfra        = "Infrastructure"
	CategoryCloud        = "Cloud"
	CategoryData         = "Data"
	CategoryML           = "Machine Learning"
	CategorySecurity     = "Security"
	CategoryDistributed  = "Distributed Systems"
	CategoryGeneral      = "General"
)

// DefaultEntries returns the built-in skill catalog. Deployments extend it
// with catalog.Load rather than editing this table.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "Go", Category: CategoryLanguage, Synonyms: []string{"golang", "go lang"}},
		{Name: "JavaScript", Category: CategoryLanguage, Synonyms: []string{"js", "ecmascript"}},
		{Name: "TypeScript", Category: CategoryLanguage, Synonyms: []string{"ts"}},
		{Name: "Python", Category: CategoryLanguage, Synonyms: []string{"py", "python3"}},
		{Name: "Java", Category: CategoryLanguage},
		{Name: "C++", Category: CategoryLanguage, Synonyms: []string{"cpp", "cplusplus"}},
		{Name: "C#", Category: CategoryLanguage, Synonyms: []string{"csharp", "c sharp"}},
		{Name: "Ruby", Category: CategoryLanguage},
		{Name: "Rust", Category: CategoryLanguage},
		{Name: "Kotlin", Category: CategoryLanguage},
		{Name: "Swift", Category: CategoryLanguage},
		{Name: "PHP", Category: CategoryLanguage},
		{Name: "SQL", Category: CategoryData},

		{Name: "React", Category: CategoryFrontend, Synonyms: []string{"react.js", "reactjs"}},
		{Name: "Vue", Category: CategoryFrontend, Synonyms: []string{"vue.js", "vuejs"}},
		{Name: "Angular", Category: CategoryFrontend, Synonyms: []string{"angularjs"}},
		{Name: "HTML", Category: CategoryFrontend, Synonyms: []string{"html5"}},
		{Name: "CSS", Category: CategoryFrontend, Synonyms: []string{"css3"}},

		{Name: "Node.js", Category: CategoryBackend, Synonyms: []string{"node", "nodejs"}},
		{Name: "Django", Category: CategoryBackend},
		{Name: "Spring", Category: CategoryBackend, Synonyms: []string{"spring boot", "springboot"}},
		{Name: "GraphQL", Category: CategoryBackend},
		{Name: "gRPC", Category: CategoryBackend, Synonyms: []string{"grpc"}},
		{Name: "REST", Category: CategoryBackend, Synonyms: []string{"rest api", "restful"}},

		{Name: "Docker", Category: CategoryInfra, Synonyms: []string{"docker containers"}},
		{Name: "Kubernetes", Category: CategoryInfra, Synonyms: []string{"k8s", "kube"}},
		{Name: "Terraform", Category: CategoryInfra, Synonyms: []string{"tf"}},
		{Name: "Ansible", Category: CategoryInfra},
		{Name: "CI/CD", Category: CategoryInfra, Synonyms: []string{"cicd", "continuous integration"}},
		{Name: "Linux", Category: CategoryInfra},

		{Name: "AWS", Category: CategoryCloud, Synonyms: []string{"amazon web services"}},
		{Name: "GCP", Category: CategoryCloud, Synonyms: []string{"google cloud", "google cloud platform"}},
		{Name: "Azure", Category: CategoryCloud, Synonyms: []string{"microsoft azure"}},

		{Name: "PostgreSQL", Category: CategoryData, Synonyms: []string{"postgres", "psql"}},
		{Name: "MySQL", Category: CategoryData},
		{Name: "MongoDB", Category: CategoryData, Synonyms: []string{"mongo"}},
		{Name: "Redis", Category: CategoryData},
		{Name: "Elasticsearch", Category: CategoryData, Synonyms: []string{"elastic search", "es"}},
		{Name: "Kafka", Category: CategoryDistributed, Synonyms: []string{"apache kafka"}},

		{Name: "Machine Learning", Category: CategoryML, Synonyms: []string{"ml"}},
		{Name: "TensorFlow", Category: CategoryML},
		{Name: "PyTorch", Category: CategoryML},
		{Name: "NLP", Category: CategoryML, Synonyms: []string{"natural language processing"}},

		{Name: "Microservices", Category: CategoryDistributed, Synonyms: []string{"micro services"}},
		{Name: "Distributed Systems", Category: CategoryDistributed},

		{Name: "Application Security", Category: CategorySecurity, Synonyms: []string{"appsec"}},
		{Name: "Penetration Testing", Category: CategorySecurity, Synonyms: []string{"pentesting", "pen testing"}},
	}
}
