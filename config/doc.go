/*
Package config loads samplekit settings.

A YAML file supplies the base values:

	log_level: debug
	log_format: json
	users:
	  "1": Alice
	  "2": Bob

Env files (read with godotenv) and then the process environment override the
logging keys through SAMPLEKIT_LOG_LEVEL and SAMPLEKIT_LOG_FORMAT. Invalid
values are reported as errors.ValidationError.
*/
package config
