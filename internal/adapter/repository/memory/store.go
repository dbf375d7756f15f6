// Package memory implementa os repositórios da loja em memória sobre o
// go-memdb. É usado nos testes e quando a aplicação roda com STORE_DRIVER=memory.
package memory

import (
	"context"
	"fmt"

	memdb "github.com/hashicorp/go-memdb"
)

const (
	tableCategories   = "categories"
	tableProducts     = "products"
	tableUnits        = "warehouse_units"
	tableCartLines    = "cart_lines"
	tableInvoices     = "invoices"
	tableInvoiceLines = "invoice_lines"
	tableUsers        = "users"
	tableProfiles     = "profiles"
	tableSequences    = "sequences"
)

// sequence substitui as colunas serial do PostgreSQL
type sequence struct {
	Name  string
	Value int64
}

func intIndex(name, field string, unique bool) *memdb.IndexSchema {
	return &memdb.IndexSchema{Name: name, Unique: unique, Indexer: &memdb.IntFieldIndex{Field: field}}
}

func stringIndex(name, field string, unique, lowercase bool) *memdb.IndexSchema {
	return &memdb.IndexSchema{
		Name:    name,
		Unique:  unique,
		Indexer: &memdb.StringFieldIndex{Field: field, Lowercase: lowercase},
	}
}

func table(name string, indexes ...*memdb.IndexSchema) *memdb.TableSchema {
	t := &memdb.TableSchema{Name: name, Indexes: make(map[string]*memdb.IndexSchema, len(indexes))}
	for _, idx := range indexes {
		t.Indexes[idx.Name] = idx
	}
	return t
}

func newSchema() *memdb.DBSchema {
	email := stringIndex("email", "Email", true, true)
	email.AllowMissing = true

	tables := []*memdb.TableSchema{
		table(tableCategories,
			intIndex("id", "ID", true),
			stringIndex("name", "Name", true, true)),
		table(tableProducts,
			intIndex("id", "ID", true),
			intIndex("category", "CategoryID", false)),
		table(tableUnits,
			intIndex("id", "ID", true),
			intIndex("product", "ProductID", false)),
		table(tableCartLines,
			intIndex("id", "ID", true),
			stringIndex("user", "UserID", false, false),
			intIndex("product", "ProductID", false)),
		table(tableInvoices,
			intIndex("id", "Number", true),
			stringIndex("user", "UserID", false, false)),
		table(tableInvoiceLines,
			intIndex("id", "ID", true),
			intIndex("invoice", "InvoiceNumber", false),
			intIndex("unit", "WarehouseUnitID", false),
			intIndex("product", "ProductID", false)),
		table(tableUsers,
			stringIndex("id", "ID", true, false),
			stringIndex("username", "Username", true, true),
			email),
		table(tableProfiles,
			stringIndex("id", "UserID", true, false)),
		table(tableSequences,
			stringIndex("id", "Name", true, false)),
	}

	schema := &memdb.DBSchema{Tables: make(map[string]*memdb.TableSchema, len(tables))}
	for _, t := range tables {
		schema.Tables[t.Name] = t
	}
	return schema
}

type txnKey struct {
	store *Store
}

// Store guarda os dados de todos os repositórios em memória.
// Há no máximo uma transação de escrita por vez; leituras fora de
// transação enxergam o último estado confirmado.
type Store struct {
	db *memdb.MemDB
}

// NewStore cria um Store vazio
func NewStore() *Store {
	db, err := memdb.NewMemDB(newSchema())
	if err != nil {
		panic(fmt.Sprintf("memory: esquema inválido: %v", err))
	}
	return &Store{db: db}
}

// WithinTransaction executa fn numa transação de escrita e a desfaz se fn
// retornar erro ou entrar em pânico. Chamadas aninhadas reaproveitam a transação corrente.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := s.txn(ctx); ok {
		return fn(ctx)
	}

	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := fn(context.WithValue(ctx, txnKey{s}, txn)); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func (s *Store) txn(ctx context.Context) (*memdb.Txn, bool) {
	txn, ok := ctx.Value(txnKey{s}).(*memdb.Txn)
	return txn, ok
}

// view executa uma leitura, dentro da transação do ctx quando houver
func (s *Store) view(ctx context.Context, fn func(txn *memdb.Txn) error) error {
	if txn, ok := s.txn(ctx); ok {
		return fn(txn)
	}
	txn := s.db.Txn(false)
	defer txn.Abort()
	return fn(txn)
}

// update executa uma escrita; fora de transação ela é confirmada sozinha
func (s *Store) update(ctx context.Context, fn func(txn *memdb.Txn) error) error {
	if txn, ok := s.txn(ctx); ok {
		return fn(txn)
	}
	txn := s.db.Txn(true)
	defer txn.Abort()

	if err := fn(txn); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

func nextID(txn *memdb.Txn, name string) (int64, error) {
	raw, err := txn.First(tableSequences, "id", name)
	if err != nil {
		return 0, dbError(err)
	}
	seq := sequence{Name: name}
	if raw != nil {
		seq = *raw.(*sequence)
	}
	seq.Value++
	if err := txn.Insert(tableSequences, &seq); err != nil {
		return 0, dbError(err)
	}
	return seq.Value, nil
}

// first retorna uma cópia do primeiro registro do índice; ok é falso se não houver
func first[T any](txn *memdb.Txn, tableName, index string, args ...interface{}) (T, bool, error) {
	var zero T
	raw, err := txn.First(tableName, index, args...)
	if err != nil {
		return zero, false, dbError(err)
	}
	if raw == nil {
		return zero, false, nil
	}
	return *raw.(*T), true, nil
}

// all retorna cópias dos registros do índice, na ordem do índice
func all[T any](txn *memdb.Txn, tableName, index string, args ...interface{}) ([]T, error) {
	it, err := txn.Get(tableName, index, args...)
	if err != nil {
		return nil, dbError(err)
	}
	var out []T
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, *raw.(*T))
	}
	return out, nil
}

func exists(txn *memdb.Txn, tableName, index string, args ...interface{}) (bool, error) {
	raw, err := txn.First(tableName, index, args...)
	if err != nil {
		return false, dbError(err)
	}
	return raw != nil, nil
}

func insert[T any](txn *memdb.Txn, tableName string, v T) error {
	if err := txn.Insert(tableName, &v); err != nil {
		return dbError(err)
	}
	return nil
}

func dbError(err error) error {
	return fmt.Errorf("erro no armazenamento em memória: %w", err)
}

// isSold informa se alguma linha de boleta referencia a unidade
func isSold(txn *memdb.Txn, unitID int64) (bool, error) {
	return exists(txn, tableInvoiceLines, "unit", unitID)
}
