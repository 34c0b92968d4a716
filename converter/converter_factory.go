package converter

// New resolves a renderer by name, nil when unknown.
func New(name string) Renderer {
	switch name {
	case "xlsx":
		return XLSXConverter{}
	case "pdf":
		return PDFConverter{}
	case "json":
		return JSONConverter{}
	case "pjson":
		return JSONConverter{Pretty: true}
	case "pgsql":
		return PGSQLConverter{}
	default:
		return nil
	}
}
