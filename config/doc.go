/*
Package config loads the epistemic command's configuration.

A configuration file binds stores to the tables that populate them:

	log_level: info
	log_format: text
	builtin: true
	stores:
	  - name: proposed
	    sources:
	      - path: tables/proposed.yaml
	  - name: calibrated
	    sources:
	      - table: constants
	dynamodb:
	  region: eu-west-1

Every key can be overridden from the environment with the EPISTEMIC_ prefix
(EPISTEMIC_LOG_LEVEL, EPISTEMIC_DYNAMODB_REGION, ...). DynamoDB credentials
also fall back to the standard AWS_* variables, and a .env file in the
working directory is read first when present.
*/
package config
