package problem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/arbortask/fondhtn/domain"
	"github.com/arbortask/fondhtn/htn"
)

// Sentinel errors for problem-file loading (spec §7's "input errors"
// category: reported and abort, never a contract-violation panic).
var (
	ErrUnknownFact   = errors.New("problem: unknown fact name")
	ErrUnknownTask   = errors.New("problem: unknown task name")
	ErrDuplicateFact = errors.New("problem: duplicate fact name")
	ErrDuplicateTask = errors.New("problem: duplicate task name")
	ErrUnknownMethod = errors.New("problem: method references a task not listed as compound")
)

var validate = validator.New()

// Load reads and parses a problem file at path, validates its shape, and
// resolves it into a FONDProblem ready for the search packages. File
// format is spec §6's JSON problem description.
func Load(path string) (*FONDProblem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: reading %s: %w", path, err)
	}

	var file fondFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("problem: parsing %s: %w", path, err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("problem: validating %s: %w", path, err)
	}

	return resolve(&file)
}

func resolve(file *fondFile) (*FONDProblem, error) {
	facts, err := buildFactTable(file.Facts)
	if err != nil {
		return nil, err
	}

	taskNames, err := buildTaskNameTable(file)
	if err != nil {
		return nil, err
	}

	dom, err := buildDomain(file, facts, taskNames)
	if err != nil {
		return nil, err
	}

	initState, err := resolveFactNames(facts, file.InitialState)
	if err != nil {
		return nil, err
	}

	initialName, ok := taskNames.ID(file.InitialTask)
	if !ok {
		return nil, fmt.Errorf("%w: initial task %q", ErrUnknownTask, file.InitialTask)
	}
	initialTN := htn.New([]htn.TaskID{0}, nil, dom, map[htn.TaskID]domain.TaskNameID{0: initialName})

	return &FONDProblem{
		Facts:       facts,
		TaskNames:   taskNames,
		Domain:      dom,
		InitState:   initState,
		InitialTask: initialTN,
	}, nil
}

func buildFactTable(names []string) (*FactTable, error) {
	table := &FactTable{names: names, ids: make(map[string]domain.FactID, len(names))}
	for i, name := range names {
		if _, dup := table.ids[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateFact, name)
		}
		table.ids[name] = domain.FactID(i)
	}

	return table, nil
}

func buildTaskNameTable(file *fondFile) (*TaskNameTable, error) {
	table := &TaskNameTable{ids: make(map[string]domain.TaskNameID)}
	for _, p := range file.Primitives {
		if _, dup := table.ids[p.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTask, p.Name)
		}
		table.ids[p.Name] = domain.TaskNameID(len(table.names))
		table.names = append(table.names, p.Name)
	}
	for _, c := range file.Compounds {
		if _, dup := table.ids[c]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTask, c)
		}
		table.ids[c] = domain.TaskNameID(len(table.names))
		table.names = append(table.names, c)
	}

	return table, nil
}

func resolveFactNames(facts *FactTable, names []string) (domain.FactSet, error) {
	ids := make([]domain.FactID, 0, len(names))
	for _, name := range names {
		id, ok := facts.ID(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFact, name)
		}
		ids = append(ids, id)
	}

	return domain.NewFactSet(ids...), nil
}

func buildDomain(file *fondFile, facts *FactTable, taskNames *TaskNameTable) (*domain.Domain, error) {
	entries := make(map[domain.TaskNameID]domain.Task, len(file.Primitives)+len(file.Compounds))

	for _, p := range file.Primitives {
		pre, err := resolveFactNames(facts, p.Preconditions)
		if err != nil {
			return nil, err
		}
		outcomes := make([]domain.Outcome, len(p.Outcomes))
		for i, o := range p.Outcomes {
			add, err := resolveFactNames(facts, o.Add)
			if err != nil {
				return nil, err
			}
			del, err := resolveFactNames(facts, o.Delete)
			if err != nil {
				return nil, err
			}
			outcomes[i] = domain.Outcome{Add: add, Del: del}
		}
		id, _ := taskNames.ID(p.Name)
		entries[id] = &domain.PrimitiveAction{Name: p.Name, Preconditions: pre, Outcomes: outcomes}
	}

	methodsByTask := make(map[string][]domain.Method)
	for _, m := range file.Methods {
		if _, ok := entries[mustCompoundID(taskNames, m.Task)]; ok {
			return nil, fmt.Errorf("%w: %q names a primitive", ErrUnknownMethod, m.Task)
		}
		subtasks := make([]domain.TaskNameID, len(m.Subtasks))
		for i, name := range m.Subtasks {
			id, ok := taskNames.ID(name)
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnknownTask, name)
			}
			subtasks[i] = id
		}
		methodsByTask[m.Task] = append(methodsByTask[m.Task], domain.Method{
			Name:      m.Name,
			Subtasks:  subtasks,
			Orderings: m.Orderings,
		})
	}

	for _, name := range file.Compounds {
		id, _ := taskNames.ID(name)
		entries[id] = &domain.CompoundTask{Name: name, Methods: methodsByTask[name]}
	}

	return domain.New(entries), nil
}

// mustCompoundID resolves name to a task-name id, returning the out-of-range
// sentinel id 1<<32-1 (never an entries key) when name is unknown. It only
// lets buildDomain distinguish "names a primitive" from "names a compound or
// is unknown". A method whose task name is unknown is not reported: only the
// names listed under compounds receive methods, so such a method is dropped.
func mustCompoundID(taskNames *TaskNameTable, name string) domain.TaskNameID {
	id, ok := taskNames.ID(name)
	if !ok {
		return domain.TaskNameID(1<<32 - 1)
	}

	return id
}
