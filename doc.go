// Package jsoncsv converts a stream of JSON records, one per line, into
// comma separated rows.
//
// The packages are organized as follows:
//
// - encoding/json: JSON decoder producing tokens for one line
// - value: the JSON value model, built from tokens
// - path: resolution of dotted paths and JSONPath queries against values
// - projection: flatten stages and projection of records into cells
// - encoding/csv: output of the header and rows
//
// The Pipeline type in this package puts them together:
//
//	read line -> parse -> flatten -> project -> write row
//
// Each line is processed completely before the next one is read, so rows
// come out in input order and output is available straight away when piping
// through tools like 'head'.
//
// The CLI utility is in the directory cmd/jsoncsv. You can install it with:
//
//	go install github.com/arnodel/jsoncsv/cmd/jsoncsv
package jsoncsv
