// Package vsqlfixture provides ready-made Environment/Group/Field values for
// the end-to-end scenarios exercised by the vsql package's tests, in the
// same spirit as mock.NewMockStore: a constructor that hands back a small,
// self-contained stand-in so tests don't each re-build the same schema.
package vsqlfixture

import "github.com/ha1tch/vsql/vsql"

// TrivialSelect builds the Environment for SPEC_FULL.md §8 scenario 1: a
// root "user" field backed by the "identity" table, with three scalar
// leaves (email, firstname, surname) and a join predicate tying the
// current session's user to its identity row.
func TrivialSelect() vsql.Environment {
	identity := vsql.NewGroup("identity",
		&vsql.Field{Identifier: "email", Datatype: vsql.Str, FieldSQL: "ide_account"},
		&vsql.Field{Identifier: "firstname", Datatype: vsql.Str, FieldSQL: "ide_firstname"},
		&vsql.Field{Identifier: "surname", Datatype: vsql.Str, FieldSQL: "ide_surname"},
	)

	user := &vsql.Field{
		Identifier: "user",
		Datatype:   vsql.Null,
		JoinSQL:    "<global-user-sql> = {d}.ide_id(+)",
		RefGroup:   identity,
	}

	return vsql.Environment{"user": user}
}

// AutoJoin builds the Environment for SPEC_FULL.md §8 scenario 5: a root
// "r" field backed by an application's record table, with a self-referential
// "v_parent" field (an applookup pointing back at another row of the same
// table) and a scalar "v_name" leaf reached through it.
func AutoJoin() vsql.Environment {
	vParent := &vsql.Field{
		Identifier: "v_parent",
		Datatype:   vsql.Null,
		FieldSQL:   "fk_parent",
		JoinSQL:    "{m}.fk_parent = {d}.dat_id(+)",
	}
	vName := &vsql.Field{
		Identifier: "v_name",
		Datatype:   vsql.Str,
		FieldSQL:   "dat_name",
	}

	records := vsql.NewGroup("dat_science", vParent, vName)
	vParent.RefGroup = records // self-referential applookup

	r := &vsql.Field{
		Identifier: "r",
		Datatype:   vsql.Null,
		JoinSQL:    "<global-record-sql> = {d}.dat_id(+)",
		RefGroup:   records,
	}

	return vsql.Environment{"r": r}
}
