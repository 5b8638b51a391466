package config

import (
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

// UnmarshalEasyJSON decodes the configuration document.
func (f *File) UnmarshalEasyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		if isTopLevel {
			in.Consumed()
		}
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "packageManager":
			f.PackageManager = in.String()
		case "packages":
			in.Delim('[')
			f.Packages = make([]Package, 0, 4)
			for !in.IsDelim(']') {
				var p Package
				p.UnmarshalEasyJSON(in)
				f.Packages = append(f.Packages, p)
				in.WantComma()
			}
			in.Delim(']')
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// UnmarshalEasyJSON decodes a single package entry. Unknown fields and
// null values are ignored.
func (p *Package) UnmarshalEasyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "name":
			p.Name = in.String()
		case "localPath":
			p.LocalPath = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// MarshalEasyJSON encodes the configuration document.
func (f File) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	if f.PackageManager != "" {
		out.RawString(`"packageManager":`)
		out.String(f.PackageManager)
		out.RawByte(',')
	}
	out.RawString(`"packages":`)
	out.RawByte('[')
	for i, p := range f.Packages {
		if i > 0 {
			out.RawByte(',')
		}
		p.MarshalEasyJSON(out)
	}
	out.RawByte(']')
	out.RawByte('}')
}

// MarshalEasyJSON encodes a single package entry.
func (p Package) MarshalEasyJSON(out *jwriter.Writer) {
	out.RawString(`{"name":`)
	out.String(p.Name)
	if p.LocalPath != "" {
		out.RawString(`,"localPath":`)
		out.String(p.LocalPath)
	}
	out.RawByte('}')
}
