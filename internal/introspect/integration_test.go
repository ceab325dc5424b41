//go:build integration

package introspect

import (
	"context"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/koba/sqlcatalog/internal/catalog"
	"github.com/koba/sqlcatalog/internal/database"
)

var (
	sqlServerImage          = "mcr.microsoft.com/mssql/server:2022-latest"
	sqlServerPort  nat.Port = "1433/tcp"
)

const sqlServerPassword = "^Catalog1234"

type SQLServerSuite struct {
	suite.Suite
	container testcontainers.Container
	conn      *database.SQLServer
}

func (s *SQLServerSuite) SetupSuite() {
	ctx := context.Background()
	var err error
	s.container, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: sqlServerImage,
			Env: map[string]string{
				"ACCEPT_EULA":       "Y",
				"MSSQL_SA_PASSWORD": sqlServerPassword,
				"MSSQL_PID":         "Developer",
			},
			ExposedPorts: []string{string(sqlServerPort)},
			WaitingFor:   wait.ForLog("SQL Server is now ready for client connections").WithStartupTimeout(3 * time.Minute),
		},
		Started: true,
	})
	s.Require().NoErrorf(err, "failed to start SQL Server container")

	host, err := s.container.Host(ctx)
	s.Require().NoErrorf(err, "failed to get container host")
	port, err := s.container.MappedPort(ctx, sqlServerPort)
	s.Require().NoErrorf(err, "failed to get container port")

	s.conn = database.NewSQLServer(database.Config{
		Host:        host,
		Port:        port.Int(),
		Database:    "master",
		User:        "sa",
		Password:    sqlServerPassword,
		Encrypt:     "disable",
		AppName:     "sqlcatalog-integration",
		DialTimeout: 30 * time.Second,
	})
	s.Require().NoError(s.conn.Connect(ctx))

	_, err = s.conn.DB().ExecContext(ctx, `
		CREATE TABLE dbo.orders (
			id INT IDENTITY(1, 1) PRIMARY KEY,
			customer NVARCHAR(100) NOT NULL,
			email VARCHAR(200) MASKED WITH (FUNCTION = 'email()') NULL,
			qty INT NOT NULL,
			price MONEY NOT NULL,
			total AS (qty * price) PERSISTED
		)`)
	s.Require().NoError(err)
	_, err = s.conn.DB().ExecContext(ctx, `
		CREATE PROCEDURE dbo.get_order @id INT, @with_lines BIT = 0 AS
		SELECT * FROM dbo.orders WHERE id = @id`)
	s.Require().NoError(err)
}

func (s *SQLServerSuite) TearDownSuite() {
	ctx := context.Background()
	if s.conn != nil {
		s.Assert().NoError(s.conn.Close())
	}
	if s.container != nil {
		s.Assert().NoErrorf(s.container.Terminate(ctx), "failed to terminate SQL Server container")
	}
}

func (s *SQLServerSuite) TestServerInfo() {
	info, err := s.conn.ServerInfo(context.Background())
	s.Require().NoError(err)
	s.Assert().Equal("master", info.Database)
	s.Assert().NotEmpty(info.ProductVersion)
}

func (s *SQLServerSuite) TestLoadEveryView() {
	ctx := context.Background()
	for _, v := range Views() {
		s.Run(v.Name, func() {
			res, err := v.Load(ctx, s.conn.DB(), WithLimit(50))
			s.Require().NoError(err)
			_, err = res.Records()
			s.Require().NoError(err)
		})
	}
}

func (s *SQLServerSuite) TestColumnFeatures() {
	ctx := context.Background()
	db := s.conn.DB()

	identity, err := Load[catalog.IdentityColumn](ctx, db, "sys.identity_columns",
		WithWhere("name", "id"), WithWhere("object_id", s.objectID("dbo.orders")))
	s.Require().NoError(err)
	s.Require().Len(identity, 1)
	s.Assert().True(identity[0].IsIdentity)
	s.Assert().Nil(identity[0].LastValue)

	masked, err := Load[catalog.MaskedColumn](ctx, db, "sys.masked_columns")
	s.Require().NoError(err)
	s.Require().Len(masked, 1)
	s.Assert().Equal("email", masked[0].Name)
	s.Assert().Equal(catalog.SystemTypeVarChar, masked[0].SystemType())

	computed, err := Load[catalog.ComputedColumn](ctx, db, "sys.computed_columns")
	s.Require().NoError(err)
	s.Require().Len(computed, 1)
	s.Assert().True(computed[0].IsPersisted)

	tables, err := Load[catalog.Table](ctx, db, "sys.tables", WithWhere("name", "orders"))
	s.Require().NoError(err)
	s.Require().Len(tables, 1)
	s.Assert().Equal(catalog.ObjectTypeTable, tables[0].ObjectType())

	params, err := Load[catalog.Parameter](ctx, db, "sys.parameters",
		WithWhere("object_id", s.objectID("dbo.get_order")))
	s.Require().NoError(err)
	s.Require().Len(params, 2)
	s.Assert().Equal("@id", params[0].Name)
	s.Assert().Equal(catalog.SystemTypeBit, params[1].SystemType())
}

func (s *SQLServerSuite) TestRequests() {
	res, err := LoadView(context.Background(), s.conn.DB(), "sys.dm_exec_requests")
	s.Require().NoError(err)
	s.Require().NotEmpty(res.Rows)
	for _, row := range res.Rows {
		s.Assert().Contains(row.(catalog.Request).String(), "session_id=")
	}
}

func (s *SQLServerSuite) objectID(name string) int32 {
	var id int32
	err := s.conn.DB().QueryRowContext(context.Background(), "SELECT OBJECT_ID(@p1)", name).Scan(&id)
	s.Require().NoError(err)
	return id
}

func TestSQLServer(t *testing.T) {
	suite.Run(t, new(SQLServerSuite))
}
