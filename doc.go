// Package tableschema validates tabular data against a declarative set of
// per-column rules and reports every violation with its exact coordinate
// and a human-readable reason.
//
// A Schema pairs named columns with rule trees from pkg/validate; frames
// come from CSV, Apache Arrow, or direct construction via pkg/frame. Schemas
// are immutable and safe to reuse across frames and goroutines.
//
// # Usage
//
//	schema, err := tableschema.New([]tableschema.Column{
//	    tableschema.NewColumn("age",
//	        validate.IsType(frame.TypeInt),
//	        validate.InRange(0, 120)),
//	    tableschema.NewColumn("sex",
//	        validate.InList([]string{"Male", "Female", "Other"})),
//	})
//	if err != nil {
//	    return err
//	}
//
//	f, err := frame.ReadCSV(file, frame.WithTypeInference())
//	if err != nil {
//	    return err
//	}
//
//	warnings, err := schema.Validate(f)
//	for _, w := range warnings {
//	    fmt.Println(w.Render())
//	}
//
// Schemas can also be loaded from YAML via LoadSchema, and a run can be
// serialized with NewReport.
package tableschema
