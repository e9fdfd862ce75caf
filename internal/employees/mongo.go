package employees

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	employeesCollection   = "employees"
	departmentsCollection = "departments"
	developersCollection  = "developers"
	testersCollection     = "testers"
)

type employeeDoc struct {
	ID   int    `bson:"id"`
	Name string `bson:"name"`
}

type departmentDoc struct {
	Name  string `bson:"name"`
	EmpID int    `bson:"emp_id"`
}

type languageDoc struct {
	Language string `bson:"language"`
	EmpID    int    `bson:"emp_id"`
}

// joinedDoc is one row of the list pipeline.
type joinedDoc struct {
	ID          int             `bson:"id"`
	Name        string          `bson:"name"`
	Departments []departmentDoc `bson:"department_info"`
	Developers  []languageDoc   `bson:"developer_info"`
	Testers     []languageDoc   `bson:"tester_info"`
}

func (d joinedDoc) employee() Employee {
	e := Employee{ID: d.ID, Name: d.Name}
	if len(d.Departments) > 0 {
		e.Department = d.Departments[0].Name
	}
	if len(d.Developers) > 0 {
		e.Language = d.Developers[0].Language
	}
	if e.Language == "" && len(d.Testers) > 0 {
		e.Language = d.Testers[0].Language
	}
	return e
}

type mongoStore struct {
	db *mongo.Database
}

// NewMongoStore stores employees as documents across four collections
// linked by the numeric employee id.
func NewMongoStore(db *mongo.Database) Store {
	return &mongoStore{db: db}
}

// nextID returns one more than the highest stored id, or 1 for an empty collection.
func (s *mongoStore) nextID(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})

	var last employeeDoc
	err := s.db.Collection(employeesCollection).FindOne(ctx, bson.D{}, opts).Decode(&last)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return last.ID + 1, nil
}

func (s *mongoStore) Insert(ctx context.Context, cmd CreateCommand) (int, error) {
	id, err := s.nextID(ctx)
	if err != nil {
		return 0, fmt.Errorf("next employee id: %w", err)
	}

	if _, err := s.db.Collection(employeesCollection).InsertOne(ctx, employeeDoc{ID: id, Name: cmd.Name}); err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}

	if _, err := s.db.Collection(departmentsCollection).InsertOne(ctx, departmentDoc{Name: cmd.Department, EmpID: id}); err != nil {
		return 0, fmt.Errorf("insert department: %w", err)
	}

	var coll string
	switch cmd.Role {
	case RoleDeveloper:
		coll = developersCollection
	case RoleTester:
		coll = testersCollection
	}
	if coll != "" {
		if _, err := s.db.Collection(coll).InsertOne(ctx, languageDoc{Language: cmd.Language, EmpID: id}); err != nil {
			return 0, fmt.Errorf("insert %s: %w", cmd.Role, err)
		}
	}

	return id, nil
}

func (s *mongoStore) List(ctx context.Context) ([]Employee, error) {
	cursor, err := s.db.Collection(employeesCollection).Aggregate(ctx, listPipeline())
	if err != nil {
		return nil, fmt.Errorf("aggregate employees: %w", err)
	}

	var docs []joinedDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read employees: %w", err)
	}

	list := make([]Employee, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.employee())
	}
	return list, nil
}

func listPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		lookup(departmentsCollection, "department_info"),
		lookup(developersCollection, "developer_info"),
		lookup(testersCollection, "tester_info"),
		{{Key: "$sort", Value: bson.D{{Key: "id", Value: 1}}}},
	}
}

func lookup(from, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: "id"},
		{Key: "foreignField", Value: "emp_id"},
		{Key: "as", Value: as},
	}}}
}
