package card

import "github.com/mcnp-tools/go-mcnp/diag"

// Data is a data card: exactly one data option.
type Data struct {
	option Option
}

func NewData(opt Option) (*Data, error) {
	if opt.Grammar() == nil || opt.Family() != DataFamily {
		return nil, diag.Errorf(diag.SemanticsRange, opt.String(), "%w: not a data card", diag.ErrRange)
	}
	return &Data{option: opt}, nil
}

func ParseData(text string) (*Data, error) {
	return Default.ParseData(text)
}

func (r *Registry) ParseData(text string) (*Data, error) {
	o, err := r.ParseOption(DataFamily, text)
	if err != nil {
		return nil, err
	}
	return NewData(o)
}

func (d *Data) Family() Family   { return DataFamily }
func (d *Data) Key() Key         { return d.option.Key() }
func (d *Data) Option() Option   { return d.option }
func (d *Data) Mnemonic() string { return d.option.Mnemonic() }
func (d *Data) Line() string     { return d.option.String() }
func (d *Data) String() string   { return wrap(d.Line()) }
