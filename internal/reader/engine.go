package reader

// Engine reads one spreadsheet format into a raw cell grid. Engines return
// plain cells; header interpretation happens in the Reader so every format
// gets identical frame semantics.
type Engine interface {
	Name() string
	Read(path, sheet string) ([][]interface{}, error)
}

// Engine names, mirroring the reader keywords the analysts already use in
// their run books.
const (
	EngineExcelize = "excelize"
	EngineXLS      = "xls"
	EngineXLSB     = "xlsb"
)

// extensionEngines maps a lower-cased file extension to the engine that
// owns the format.
var extensionEngines = map[string]string{
	".xlsx": EngineExcelize,
	".xlsm": EngineExcelize,
	".xls":  EngineXLS,
	".xlsb": EngineXLSB,
}

// engineProviders names the module that would supply each engine this
// build does not link.
var engineProviders = map[string]string{
	EngineXLS:  "github.com/extrame/xls",
	EngineXLSB: "github.com/pbnjay/grate",
}
