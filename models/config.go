package models

type Config struct {
	Debug          bool   `yaml:"debug" envconfig:"MIPFAM_DEBUG"`
	SemVer         string `yaml:"semver" envconfig:"MIPFAM_SERVICE_VERSION" default:"0.1.0"`
	ServiceContact string `yaml:"serviceContact" envconfig:"MIPFAM_SERVICE_CONTACT"`

	Api struct {
		Url                   string `yaml:"url" envconfig:"MIPFAM_PUBLIC_URL"`
		Port                  string `yaml:"port" envconfig:"MIPFAM_API_INTERNAL_PORT" default:"5000"`
		ConcurrencyLevel      int    `yaml:"concurrencyLevel" envconfig:"MIPFAM_API_CONCURRENCY_LEVEL" default:"4"`
		RequestRetentionHours int    `yaml:"requestRetentionHours" envconfig:"MIPFAM_API_REQUEST_RETENTION_HOURS" default:"24"`
	} `yaml:"api"`

	Analysis struct {
		GeneAnnotation string `yaml:"geneAnnotation" envconfig:"MIPFAM_GENE_ANNOTATION" default:"HGNC"`
		FamilyFileType string `yaml:"familyFileType" envconfig:"MIPFAM_FAMILY_FILE_TYPE" default:"cmms"`
		SortByPosition bool   `yaml:"sortByPosition" envconfig:"MIPFAM_SORT_BY_POSITION"`
		Threshold      int    `yaml:"threshold" envconfig:"MIPFAM_RANK_SCORE_THRESHOLD"`
	} `yaml:"analysis"`

	Elasticsearch struct {
		Url      string `yaml:"url" envconfig:"MIPFAM_ES_URL"`
		Username string `yaml:"username" envconfig:"MIPFAM_ES_USERNAME"`
		Password string `yaml:"password" envconfig:"MIPFAM_ES_PASSWORD"`
	} `yaml:"elasticsearch"`

	AuthX struct {
		IsAuthorizationEnabled bool   `yaml:"isAuthorizationEnabled" envconfig:"MIPFAM_AUTHZ_ENABLED"`
		AuthorizationUrl       string `yaml:"authorizationUrl" envconfig:"MIPFAM_AUTHZ_URL"`
	} `yaml:"authX"`
}
