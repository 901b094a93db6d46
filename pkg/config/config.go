package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App AppConfig
	Gen GenConfig
	Out OutputConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// GenConfig parámetros de la generación del dataset.
// Seed fija la semilla del generador pseudoaleatorio: misma semilla + mismos
// parámetros => dataset idéntico byte a byte.
type GenConfig struct {
	Seed        int64
	Customers   int
	Products    int
	StartDate   string // inicio del negocio, formato 2006-01-02
	EndDate     string // "hoy" para la simulación, formato 2006-01-02
	CatalogPath string // CSV de catálogo; vacío = catálogo de demostración incorporado
}

// OutputConfig destino de los CSV generados.
type OutputConfig struct {
	Dir string
}

// DateWindow devuelve el rango [inicio, fin] del negocio ya parseado.
func (c GenConfig) DateWindow() (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", c.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("GEN_START_DATE inválida %q: %w", c.StartDate, err)
	}
	end, err := time.Parse("2006-01-02", c.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("GEN_END_DATE inválida %q: %w", c.EndDate, err)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("rango de fechas inválido: %s >= %s", c.StartDate, c.EndDate)
	}
	return start, end, nil
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo .env).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, GEN_SEED, GEN_CUSTOMERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "aurelion-datagen"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Gen: GenConfig{
			Seed:        int64(getInt(v, "GEN_SEED", 42)),
			Customers:   getInt(v, "GEN_CUSTOMERS", 576),
			Products:    getInt(v, "GEN_PRODUCTS", 100),
			StartDate:   getString(v, "GEN_START_DATE", "2023-01-01"),
			EndDate:     getString(v, "GEN_END_DATE", "2024-10-31"),
			CatalogPath: getString(v, "GEN_CATALOG_PATH", ""),
		},
		Out: OutputConfig{
			Dir: getString(v, "GEN_OUTPUT_DIR", "./out"),
		},
	}

	if cfg.Gen.Customers <= 0 || cfg.Gen.Products <= 0 {
		return nil, fmt.Errorf("GEN_CUSTOMERS (%d) y GEN_PRODUCTS (%d) deben ser positivos",
			cfg.Gen.Customers, cfg.Gen.Products)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
