// Package enum gives ordinary Go types enumeration semantics: a fixed, named
// set of singleton instances that can be looked up by name, listed in
// declaration order and printed as their declared name.
//
// A type opts in by embedding Enum and is always used through a pointer.
// Its instances are declared as the fields of a struct and registered once:
//
//	type Status struct {
//	    enum.Enum
//	    Blocked bool
//	}
//
//	var Statuses = struct {
//	    LOADING *Status
//	    READY   *Status
//	}{
//	    LOADING: &Status{Blocked: true},
//	    READY:   &Status{Blocked: false},
//	}
//
//	var StatusEnum = enum.MustRegister[*Status](enum.Default, &Statuses)
//
// After registration Statuses.LOADING.String() is "LOADING",
// StatusEnum.FromString("READY") returns Statuses.READY and
// StatusEnum.Values() returns both instances in field order.
//
// Instances can also be declared with an explicit Builder or a YAML table
// (RegisterYAML). Registration of a type happens exactly once per Registry;
// a second attempt is rejected and leaves the first registration untouched.
package enum
