// Package main is the SmartSales365 admin console: an operator CLI over the
// backend's dashboards, CRUD screens and AI prediction/model endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/smartsales365/console/internal/api"
	"github.com/smartsales365/console/internal/config"
	"github.com/smartsales365/console/internal/console"
	"github.com/smartsales365/console/internal/format"
	"github.com/smartsales365/console/internal/poller"
	"github.com/smartsales365/console/internal/predictions"
	"github.com/smartsales365/console/internal/settings"
	"github.com/smartsales365/console/pkg/models"
)

const usage = `usage: console <command> [flags]

commands:
  status      model status and data availability
  train       start a training run and follow it to completion
  update      refit the model with recent data and follow it
  history     training run history
  predict     generate sales predictions
  export      export a prediction report (pdf/excel)
  stats       dashboard aggregates
  clients     list clients
  client      show one client and their purchase history
  receipt     download a sale's receipt PDF
  seed        generate demo data
  settings    show or save the store configuration
`

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(os.Args[1:]); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := api.NewHTTPClient(cfg.API.BaseURL, cfg.API.DataToken, cfg.API.Timeout)

	app := &app{cfg: cfg, client: client}

	switch cmd := args[0]; cmd {
	case "status":
		return app.status(ctx)
	case "train":
		return app.follow(ctx, client.TrainModel, "entrenamiento")
	case "update":
		return app.follow(ctx, client.UpdateModel, "actualización")
	case "history":
		return app.history(ctx)
	case "predict":
		return app.predict(ctx, args[1:])
	case "export":
		return app.export(ctx, args[1:])
	case "stats":
		return app.stats(ctx)
	case "clients":
		return app.clients(ctx, args[1:])
	case "client":
		return app.clientDetail(ctx, args[1:])
	case "receipt":
		return app.receipt(ctx, args[1:])
	case "seed":
		return app.seed(ctx, args[1:])
	case "settings":
		return app.settings(ctx, args[1:])
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

type app struct {
	cfg    *config.Config
	client *api.HTTPClient
}

func (a *app) status(ctx context.Context) error {
	status, err := a.client.ModelStatus(ctx)
	if err != nil {
		return err
	}
	printStatus(status)
	return nil
}

// follow kicks off a training or update job and polls the status until the
// job reaches a terminal state.
func (a *app) follow(ctx context.Context, kick func(context.Context) error, label string) error {
	if err := kick(ctx); err != nil {
		return err
	}
	slog.Info("solicitud aceptada, esperando al modelo", "operación", label)

	p := poller.New(a.client,
		poller.WithInterval(a.cfg.Poll.Interval),
		poller.WithOnStatus(func(st *models.ModelStatus) {
			if st.TrainingInProgress() {
				fmt.Printf("  entrenando... registros procesados: %d\n",
					st.ActiveTraining.RecordsProcessed)
				return
			}
			printStatus(st)
		}),
		poller.WithOnError(func(err error) {
			slog.Warn("no se pudo consultar el estado", "error", err)
		}),
	)

	h := p.Start(ctx)
	defer h.Stop()

	select {
	case <-h.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *app) history(ctx context.Context) error {
	entries, err := a.client.TrainingHistory(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No hay historial de entrenamientos aún.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%-11s %s  registros=%d", e.State, format.Date(e.StartedAt), e.RecordsProcessed)
		if e.Metrics != nil {
			fmt.Printf("  r2=%s rmse=%s mae=%s",
				format.Metric(e.Metrics.R2Score, 3),
				format.Metric(e.Metrics.RMSE, 2),
				format.Metric(e.Metrics.MAE, 2))
		}
		if e.DurationSeconds != nil {
			fmt.Printf("  duración=%.0fs", *e.DurationSeconds)
		}
		if e.ErrorMessage != nil {
			fmt.Printf("  error=%s", *e.ErrorMessage)
		}
		fmt.Println()
	}
	return nil
}

func (a *app) newController() *console.Controller {
	exporter := predictions.NewExporter(a.client, predictions.DirSaver{Dir: a.cfg.Export.Dir}, nil)
	return console.NewController(a.client, exporter,
		console.WithPollInterval(a.cfg.Poll.Interval))
}

func (a *app) predict(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("predict", flag.ContinueOnError)
	periodo := fs.String("periodo", "mes", "período de agregación")
	meses := fs.Int("meses", 3, "meses futuros a proyectar")
	categoria := fs.Int64("categoria", 0, "limitar a una categoría (0 = todas)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params := console.GenerationParams{Periodo: *periodo, MonthsAhead: *meses}
	if *categoria != 0 {
		params.CategoryID = categoria
	}

	ctrl := a.newController()
	defer ctrl.Close()

	if err := ctrl.LoadHistory(ctx); err != nil {
		slog.Warn("historial agregado no disponible", "error", err)
	}
	if err := ctrl.Generate(ctx, params); err != nil {
		return err
	}

	state := ctrl.State()
	if state.Summary != nil {
		fmt.Printf("Total proyectado: %s  promedio mensual: %s\n",
			format.Currency(state.Summary.TotalProjected, "BOB"),
			format.Currency(state.Summary.MonthlyAverage, "BOB"))
	}
	for _, pt := range state.ChartSeries() {
		marker := " "
		if pt.Kind == predictions.KindPredicted {
			marker = "*"
		}
		fmt.Printf("%s %-10s %14s", marker, format.Month(pt.Date), format.Currency(pt.Value, "BOB"))
		if pt.Kind == predictions.KindPredicted {
			fmt.Printf("  confianza=%.0f%%", pt.Confidence*100)
		}
		fmt.Println()
	}
	return nil
}

func (a *app) export(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	formato := fs.String("formato", predictions.FormatPDF, "pdf o excel")
	alcance := fs.String("alcance", predictions.ScopeAll, "recientes o todas")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctrl := a.newController()
	defer ctrl.Close()

	if err := ctrl.LoadExisting(ctx); err != nil {
		return err
	}

	path, err := ctrl.Export(ctx, *formato, *alcance)
	if err != nil {
		return err
	}
	fmt.Printf("Reporte guardado en %s\n", path)
	return nil
}

func (a *app) stats(ctx context.Context) error {
	stats, err := a.client.DashboardStats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Ventas totales:   %s\n", format.Currency(stats.TotalSales, "BOB"))
	fmt.Printf("Ventas del mes:   %s\n", format.Currency(stats.MonthSales, "BOB"))
	fmt.Printf("Ticket promedio:  %s\n", format.Currency(stats.AverageTicket, "BOB"))
	fmt.Printf("Ventas:           %d\n", stats.SaleCount)
	fmt.Printf("Clientes:         %d\n", stats.CustomerCount)
	fmt.Printf("Productos:        %d\n", stats.ProductCount)
	return nil
}

func (a *app) clients(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("clients", flag.ContinueOnError)
	search := fs.String("buscar", "", "filtro de búsqueda")
	ciudad := fs.String("ciudad", "", "filtrar por ciudad")
	if err := fs.Parse(args); err != nil {
		return err
	}

	customers, err := a.client.ListCustomers(ctx, api.Query{
		"buscar": *search,
		"ciudad": *ciudad,
	})
	if err != nil {
		return err
	}
	for _, c := range customers {
		estado := "activo"
		if !c.Activo {
			estado = "inactivo"
		}
		fmt.Printf("%6d  %-30s %-25s %s\n", c.ID, c.Nombre, c.Email, estado)
	}
	return nil
}

func (a *app) clientDetail(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: console client <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid client id %q", args[0])
	}

	cust, err := a.client.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s> %s, %s\n", cust.Nombre, cust.Email, cust.Telefono, cust.Ciudad)

	sales, err := a.client.CustomerSales(ctx, id, nil)
	if err != nil {
		return err
	}
	for _, s := range sales {
		fmt.Printf("  venta %-6d %s  %s\n", s.ID, format.Date(s.Date), format.Currency(s.Total, "BOB"))
	}
	return nil
}

func (a *app) receipt(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: console receipt <venta-id>")
	}
	saleID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid sale id %q", args[0])
	}

	data, err := a.client.DownloadReceiptPDF(ctx, saleID)
	if err != nil {
		return err
	}
	saver := predictions.DirSaver{Dir: a.cfg.Export.Dir}
	path, err := saver.Save(fmt.Sprintf("factura_%d.pdf", saleID), data)
	if err != nil {
		return err
	}
	fmt.Printf("Comprobante guardado en %s\n", path)
	return nil
}

func (a *app) seed(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	ventas := fs.Int("ventas", 120, "ventas a generar")
	productos := fs.Int("productos", 25, "productos a generar")
	clientes := fs.Int("clientes", 12, "clientes a generar")
	limpiar := fs.Bool("limpiar", false, "eliminar datos existentes primero")
	if err := fs.Parse(args); err != nil {
		return err
	}

	summary, err := a.client.GenerateDemoData(ctx, api.DemoDataRequest{
		Ventas:    *ventas,
		Productos: *productos,
		Clientes:  *clientes,
		Limpiar:   *limpiar,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Datos generados: %d ventas, %d productos, %d clientes, %d categorías, %d marcas\n",
		summary.Ventas, summary.Productos, summary.Clientes, summary.Categorias, summary.Marcas)
	return nil
}

func (a *app) settingsStore() (settings.Store, func(), error) {
	if a.cfg.Settings.RedisURL != "" {
		rs, err := settings.NewRedisStore(a.cfg.Settings.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("create redis settings store: %w", err)
		}
		return rs, func() { rs.Close() }, nil
	}
	fs, err := settings.NewFileStore(a.cfg.Settings.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return fs, func() {}, nil
}

func (a *app) settings(ctx context.Context, args []string) error {
	store, closeStore, err := a.settingsStore()
	if err != nil {
		return err
	}
	defer closeStore()

	cfg, err := store.Load(ctx)
	if err != nil {
		slog.Warn("no se pudo leer la configuración, usando valores por defecto", "error", err)
	}

	if len(args) == 0 || args[0] != "save" {
		printSettings(cfg)
		return nil
	}

	fs := flag.NewFlagSet("settings save", flag.ContinueOnError)
	nombre := fs.String("nombre", cfg.StoreName, "nombre de la tienda")
	descripcion := fs.String("descripcion", cfg.Description, "descripción")
	email := fs.String("email", cfg.ContactEmail, "email de contacto")
	telefono := fs.String("telefono", cfg.Phone, "teléfono")
	ciudad := fs.String("ciudad", cfg.City, "ciudad")
	pais := fs.String("pais", cfg.Country, "país")
	moneda := fs.String("moneda", cfg.Currency, "moneda")
	zona := fs.String("zona", cfg.Timezone, "zona horaria")
	notif := fs.Bool("notificaciones", cfg.Notifications, "notificaciones del sistema")
	auto := fs.Bool("auto", cfg.AutoModelUpdate, "actualización automática del modelo")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	cfg = models.StoreSettings{
		StoreName:       *nombre,
		Description:     *descripcion,
		ContactEmail:    *email,
		Phone:           *telefono,
		City:            *ciudad,
		Country:         *pais,
		Currency:        *moneda,
		Timezone:        *zona,
		Notifications:   *notif,
		AutoModelUpdate: *auto,
	}
	if err := store.Save(ctx, cfg); err != nil {
		return err
	}
	fmt.Println("Configuración guardada exitosamente")
	return nil
}

func printStatus(status *models.ModelStatus) {
	if status.Model != nil {
		m := status.Model
		fmt.Printf("%s v%s (%s) estado: %s\n", m.Name, m.Version, m.Algorithm, m.State)
		if m.Metrics != nil {
			fmt.Printf("  r2=%s rmse=%s mae=%s registros=%d\n",
				format.Metric(m.Metrics.R2Score, 3),
				format.Metric(m.Metrics.RMSE, 2),
				format.Metric(m.Metrics.MAE, 2),
				m.TrainingRecords)
		}
		fmt.Printf("  entrenado: %s  actualizado: %s  próxima actualización: %s\n",
			format.Date(m.TrainedAt), format.Date(m.LastUpdatedAt), format.Date(m.NextUpdateAt))
	}
	if status.TrainingInProgress() {
		fmt.Printf("  entrenamiento en curso desde %s, registros procesados: %d\n",
			format.Date(status.ActiveTraining.StartedAt),
			status.ActiveTraining.RecordsProcessed)
	}
	if status.Availability != nil {
		suf := "sí"
		if !status.Availability.Sufficient {
			suf = "no (mínimo 50 ventas)"
		}
		fmt.Printf("  ventas disponibles: %d  suficientes: %s\n",
			status.Availability.TotalSales, suf)
	}
}

func printSettings(cfg models.StoreSettings) {
	fmt.Printf("Tienda:          %s\n", cfg.StoreName)
	fmt.Printf("Descripción:     %s\n", cfg.Description)
	fmt.Printf("Email:           %s\n", cfg.ContactEmail)
	fmt.Printf("Teléfono:        %s\n", cfg.Phone)
	fmt.Printf("Ciudad:          %s, %s\n", cfg.City, cfg.Country)
	fmt.Printf("Moneda:          %s\n", cfg.Currency)
	fmt.Printf("Zona horaria:    %s\n", cfg.Timezone)
	fmt.Printf("Notificaciones:  %v\n", cfg.Notifications)
	fmt.Printf("Auto-update IA:  %v\n", cfg.AutoModelUpdate)
}
