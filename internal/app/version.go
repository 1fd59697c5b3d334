package app

var (
	version   string
	commit    string
	buildDate string
)

func SetVersionBuildCommitString(v, c, d string) {
	version, commit, buildDate = v, c, d
}
