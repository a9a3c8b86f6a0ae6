package config // package config loads application configuration from environment variables

import (
    "log"      // log is used to report configuration errors and halt execution
    "os"       // os provides access to environment variables
    "strconv"  // strconv converts strings to other types
    "strings"  // strings splits the allowed file type list
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations,
// costs and byte limits.
type Config struct {
    Env            string   // application environment (e.g. "dev", "prod")
    Port           string   // HTTP port to listen on
    FrontendOrigin string   // allowed CORS origin for the client application
    DBUser         string   // database username
    DBPass         string   // database password (optional)
    DBHost         string   // database host address
    DBPort         string   // database port number
    DBName         string   // database name
    DBPoolSize     int      // maximum open connections in the pool
    JWTSecret      string   // secret used to sign JWTs
    TokenTTLMin    int      // access token time‑to‑live in minutes
    BcryptCost     int      // bcrypt cost for password hashing
    UploadDir      string   // directory where uploaded files are stored
    MaxUploadBytes int64    // maximum accepted upload size in bytes
    AllowedTypes   []string // file extensions accepted by the upload handler
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  Upload and token
// settings fall back to the documented defaults when unset.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),                                      // environment (dev/test/prod)
        Port:           must("APP_PORT"),                                     // port to bind the HTTP server
        FrontendOrigin: getenv("FRONTEND_URL", "http://localhost:3000"),      // client origin for CORS
        DBUser:         must("DB_USER"),                                      // database user
        DBPass:         os.Getenv("DB_PASS"),                                 // database password (empty allowed)
        DBHost:         must("DB_HOST"),                                      // database host
        DBPort:         must("DB_PORT"),                                      // database port
        DBName:         must("DB_NAME"),                                      // database name
        DBPoolSize:     atoiDefault("DB_POOL_SIZE", 10),                      // bounded connection pool size
        JWTSecret:      must("JWT_SECRET"),                                   // secret used for signing JWTs
        TokenTTLMin:    atoiDefault("TOKEN_TTL_MIN", 24*60),                  // token lifetime in minutes
        BcryptCost:     atoiDefault("BCRYPT_COST", 10),                       // bcrypt cost factor
        UploadDir:      getenv("UPLOAD_DIR", "uploads"),                      // local directory for stored files
        MaxUploadBytes: int64(atoiDefault("MAX_UPLOAD_BYTES", 10*1024*1024)), // upload cap, 10MB default
        AllowedTypes:   parseTypes(getenv("ALLOWED_FILE_TYPES", defaultTypes)), // extension allow-list
    }
}

// defaultTypes mirrors the extensions the client is expected to upload:
// documents, slides, spreadsheets, images and common video containers.
const defaultTypes = "pdf,doc,docx,ppt,pptx,xls,xlsx,txt,jpg,jpeg,png,gif,mp4,avi,mov"

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// atoiDefault converts an optional environment variable into an integer.
// Unset variables yield the default; malformed values are fatal so that a
// typo in deployment config is caught at startup rather than at request time.
func atoiDefault(key string, def int) int {
    s := os.Getenv(key)
    if s == "" {
        return def
    }
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// parseTypes splits a comma separated extension list, lower-casing and
// trimming each entry.  Empty entries are dropped.
func parseTypes(s string) []string {
    var out []string
    for _, p := range strings.Split(s, ",") {
        p = strings.ToLower(strings.TrimSpace(p))
        if p != "" {
            out = append(out, p)
        }
    }
    return out
}
