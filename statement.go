package dedalog

// Statement is the closed sum type named in spec §4.10/§9: a parsed
// program statement dispatched against a Database. InsertFact,
// InsertRule, Query, and Delete are its only variants — this is a
// tagged union by Go-interface convention, not an open hierarchy
// meant for third-party implementations.
type Statement interface {
	Execute(db *Database, bindings *Bindings) ([]Answer, error)
}

// StmtInsertFact validates and adds a fact to the EDB. Execute always
// returns an empty answer sequence.
type StmtInsertFact struct {
	Fact Expression
}

func (s StmtInsertFact) Execute(db *Database, bindings *Bindings) ([]Answer, error) {
	if err := db.AddFact(s.Fact); err != nil {
		return nil, err
	}
	return nil, nil
}

// StmtInsertRule validates and adds a rule to the IDB. Execute always
// returns an empty answer sequence.
type StmtInsertRule struct {
	Rule Rule
}

func (s StmtInsertRule) Execute(db *Database, bindings *Bindings) ([]Answer, error) {
	if err := db.AddRule(s.Rule); err != nil {
		return nil, err
	}
	return nil, nil
}

// StmtQuery runs its goals against db, starting from bindings if
// non-nil or fresh bindings otherwise.
type StmtQuery struct {
	Goals []Expression
}

func (s StmtQuery) Execute(db *Database, bindings *Bindings) ([]Answer, error) {
	if bindings == nil {
		bindings = NewBindings()
	}
	return db.QueryWithBindings(bindings, s.Goals...)
}

// StmtDelete runs its goals against db and removes every ground
// instance produced by any answer from the EDB. Execute always
// returns an empty answer sequence.
type StmtDelete struct {
	Goals []Expression
}

func (s StmtDelete) Execute(db *Database, bindings *Bindings) ([]Answer, error) {
	if bindings == nil {
		bindings = NewBindings()
	}
	if err := db.DeleteWithBindings(bindings, s.Goals...); err != nil {
		return nil, err
	}
	return nil, nil
}

// ExecuteAll parses source into statements and executes them in order
// against db, collecting every answer produced by Query statements —
// the programmatic-API entry point named in spec §6
// (executeAll(source) -> list of answer-maps).
func (db *Database) ExecuteAll(source string) ([]Answer, error) {
	stmts, err := ParseProgram(source)
	if err != nil {
		return nil, err
	}
	var answers []Answer
	for _, stmt := range stmts {
		a, err := stmt.Execute(db, nil)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a...)
	}
	return answers, nil
}

// PrepareStatement parses a single statement from source, the
// programmatic-API entry point named in spec §6
// (prepareStatement(source) -> Statement). If source contains more
// than one statement, only the first is returned.
func PrepareStatement(source string) (Statement, error) {
	p, err := NewParser(source)
	if err != nil {
		return nil, err
	}
	return p.parseStatement()
}
