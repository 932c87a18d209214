package profiling

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"
)

const ApplicationName = "colorwheel.golang.app"

// Config builds the pyroscope settings for serverAddress.
func Config(serverAddress string, appLogger *log.Logger) pyroscope.Config {
	var logger pyroscope.Logger = pyroscope.StandardLogger
	if appLogger == nil {
		logger = nil
	}
	return pyroscope.Config{
		ApplicationName: ApplicationName,
		ServerAddress:   serverAddress,
		Logger:          logger,
		Tags:            map[string]string{"hostname": os.Getenv("HOSTNAME")},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
	}
}

// SetupProfiling starts continuous profiling. Stop the returned profiler on exit.
func SetupProfiling(serverAddress string, appLogger *log.Logger) (*pyroscope.Profiler, error) {
	runtime.SetMutexProfileFraction(5)
	runtime.SetBlockProfileRate(5)

	profiler, err := pyroscope.Start(Config(serverAddress, appLogger))
	if err != nil {
		return nil, fmt.Errorf("starting pyroscope: %w", err)
	}
	if appLogger != nil {
		appLogger.Println("Profiling to", serverAddress)
	}
	return profiler, nil
}
