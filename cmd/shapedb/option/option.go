package option

type Global struct {
}

type Convert struct {
	Global
	Shapefile string
	Schema    string
}

type Diff struct {
	Global
	FromFile string
	ToFile   string
	Schema   string
}

type Apply struct {
	Global
	Shapefile string
	Conffile  string
	Schema    string
	Debug     bool
}
