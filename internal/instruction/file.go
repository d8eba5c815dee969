package instruction

import (
	"errors"
	"fmt"
	"os"

	"github.com/shinji-kodama/reactor-reboot/internal/model"
	"github.com/shinji-kodama/reactor-reboot/internal/region"
)

// ReadFile loads every instruction from the file at path.
//
// Both reboot passes walk the same sequence, so the file is read once into
// memory. Failures are returned as *model.CLIError: KindIO when the file
// cannot be opened or read, KindParse for the first malformed line.
func ReadFile(path string) ([]region.Instruction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.WrapCLIError(model.KindIO,
			fmt.Sprintf("cannot read instruction file %s", path), err)
	}
	defer func() { _ = f.Close() }()

	var out []region.Instruction
	for in, err := range Scan(f) {
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				return nil, model.WrapCLIError(model.KindParse,
					fmt.Sprintf("%s: line %d: invalid instruction: %s", path, pe.Line, pe.Text), pe.Err)
			}
			return nil, model.WrapCLIError(model.KindIO,
				fmt.Sprintf("cannot read instruction file %s", path), err)
		}
		out = append(out, in)
	}
	return out, nil
}
