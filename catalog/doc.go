/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package catalog contains a built-in baseline table: the SI defining
// constants and a selection of CODATA 2018 measured constants.
package catalog
